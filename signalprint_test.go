package sdk_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	sdk "github.com/signalprint/sdk"
	"github.com/signalprint/sdk/collect"
	"github.com/signalprint/sdk/config"
	"github.com/signalprint/sdk/fingerprint"
	"github.com/signalprint/sdk/provider"
	"github.com/signalprint/sdk/provider/fake"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func testFake() *fake.Provider {
	return &fake.Provider{
		Processors:     6,
		MemoryBytes:    16 << 30,
		Bounds:         provider.Rect{Width: 1290, Height: 2796},
		Scale:          3,
		Vendor:         "1f0e2d3c-4b5a-6978-8796-a5b4c3d2e1f0",
		Passcode:       true,
		Biometrics:     false,
		Biometry:       provider.BiometryNone,
		Style:          provider.StyleLight,
		Carrier:        "Carrier One",
		CountryCode:    "310",
		NetworkCode:    "260",
		Radio:          "LTE",
		BundleID:       "com.example.app",
		Version:        "1.0.0",
		Build:          "17",
		Name:           "iOS",
		OSVersionValue: "17.4",
		Kernel:         "23.4.0",
	}
}

func newTestFingerprinter(t *testing.T, opts ...sdk.Option) sdk.Fingerprinter {
	t.Helper()
	opts = append([]sdk.Option{
		sdk.WithLogger(quietLogger()),
		sdk.WithProviders(testFake().Set()),
	}, opts...)
	fp, err := sdk.New(opts...)
	require.NoError(t, err)
	return fp
}

func TestFingerprint_Deterministic(t *testing.T) {
	fp := newTestFingerprinter(t)
	ctx := context.Background()

	first, err := fp.Fingerprint(ctx)
	require.NoError(t, err)
	second, err := fp.Fingerprint(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, first, 64, "default digest is hex SHA-256")
}

func TestFingerprint_SensitiveToOneSignal(t *testing.T) {
	ctx := context.Background()

	base := newTestFingerprinter(t)
	baseTree, err := base.FingerprintTree(ctx)
	require.NoError(t, err)

	changedFake := testFake()
	changedFake.Processors = 8
	changed, err := sdk.New(
		sdk.WithLogger(quietLogger()),
		sdk.WithProviders(changedFake.Set()),
	)
	require.NoError(t, err)
	changedTree, err := changed.FingerprintTree(ctx)
	require.NoError(t, err)

	assert.NotEqual(t, baseTree.Fingerprint, changedTree.Fingerprint)

	baseLeaf, ok := baseTree.Find("Processor Count")
	require.True(t, ok)
	changedLeaf, ok := changedTree.Find("Processor Count")
	require.True(t, ok)
	assert.NotEqual(t, baseLeaf.Fingerprint, changedLeaf.Fingerprint)

	// Sibling groups are untouched.
	baseApp, _ := baseTree.Find(collect.GroupApp)
	changedApp, _ := changedTree.Find(collect.GroupApp)
	assert.Equal(t, baseApp.Fingerprint, changedApp.Fingerprint)
}

func TestDeviceID(t *testing.T) {
	fp := newTestFingerprinter(t)

	id, err := fp.DeviceID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1f0e2d3c-4b5a-6978-8796-a5b4c3d2e1f0", id)
}

func TestDeviceID_Unavailable(t *testing.T) {
	f := testFake()
	f.Unavailable = map[string]bool{"VendorIdentifier": true}
	fp := newTestFingerprinter(t, sdk.WithProviders(f.Set()))

	_, err := fp.DeviceID(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, provider.ErrUnavailable)
}

func TestDeviceID_NoProvider(t *testing.T) {
	set := testFake().Set()
	set.Vendor = nil
	fp := newTestFingerprinter(t, sdk.WithProviders(set))

	_, err := fp.DeviceID(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, sdk.ErrDeviceIDUnavailable)
}

func TestSignals(t *testing.T) {
	fp := newTestFingerprinter(t)

	got := fp.Signals(context.Background())

	require.Contains(t, got, "hardware")
	assert.Equal(t, "6", got["hardware"]["Processor Count"])
	require.Contains(t, got, "operatingSystem")
	assert.Equal(t, "iOS", got["operatingSystem"]["Name"])
	require.Contains(t, got, "localAuthentication")
	assert.Equal(t, "true", got["localAuthentication"]["Passcode Enabled"])
}

func TestSignalsJSON(t *testing.T) {
	fp := newTestFingerprinter(t)

	rendered, err := fp.SignalsJSON(context.Background())
	require.NoError(t, err)

	var decoded map[string]map[string]string
	require.NoError(t, json.Unmarshal([]byte(rendered), &decoded))
	assert.Equal(t, "com.example.app", decoded["app"]["Bundle Identifier"])
}

func TestCollect_Diagnostics(t *testing.T) {
	f := testFake()
	f.Unavailable = map[string]bool{"CarrierName": true}
	fp := newTestFingerprinter(t, sdk.WithProviders(f.Set()))

	root, diags := fp.Collect(context.Background())

	assert.Equal(t, collect.RootLabel, root.Label())
	require.Contains(t, diags.Unavailable, "Cellular Network/Carrier Name")

	// The failed read is still present in the tree, as the sentinel.
	got := fp.Signals(context.Background())
	assert.Equal(t, collect.Sentinel, got["cellularNetwork"]["Carrier Name"])
}

func TestNew_DisabledGroups(t *testing.T) {
	off := false
	cfg := config.Default()
	cfg.Groups.Cellular = &off
	cfg.Groups.LocalAuthentication = &off

	fp := newTestFingerprinter(t, sdk.WithConfiguration(cfg))

	tree, err := fp.FingerprintTree(context.Background())
	require.NoError(t, err)

	labels := make([]string, 0, len(tree.Children))
	for _, child := range tree.Children {
		labels = append(labels, child.Label)
	}
	assert.Equal(t, []string{
		collect.GroupApp,
		collect.GroupHardware,
		collect.GroupOperatingSystem,
		collect.GroupIdentifiers,
	}, labels)
}

func TestNew_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "signalprint.yaml")
	require.NoError(t, os.WriteFile(path, []byte("hash:\n  algorithm: sha512\n"), 0o644))

	fp := newTestFingerprinter(t, sdk.WithConfig(path))

	digest, err := fp.Fingerprint(context.Background())
	require.NoError(t, err)
	assert.Len(t, digest, 128, "sha512 digests are 128 hex characters")
}

func TestNew_BadConfigFile(t *testing.T) {
	_, err := sdk.New(
		sdk.WithLogger(quietLogger()),
		sdk.WithConfig(filepath.Join(t.TempDir(), "missing.yaml")),
	)
	require.Error(t, err)

	var sdkErr *sdk.Error
	require.ErrorAs(t, err, &sdkErr)
	assert.Equal(t, sdk.KindConfiguration, sdkErr.Kind)
}

func TestNew_NoBuilders(t *testing.T) {
	_, err := sdk.New(
		sdk.WithLogger(quietLogger()),
		sdk.WithProviders(provider.Set{}),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, sdk.ErrNoBuilders)
}

func TestNew_CustomHasher(t *testing.T) {
	echo := fingerprint.HasherFunc(func(data []byte) (string, error) {
		return "H(" + string(data) + ")", nil
	})

	fp := newTestFingerprinter(t,
		sdk.WithHasher(echo),
		sdk.WithBuilders(collect.NewIdentifiers(testFake())),
	)

	digest, err := fp.Fingerprint(context.Background())
	require.NoError(t, err)

	// Root(Identifiers(Vendor Identifier)) under the echo hasher.
	assert.Equal(t, "H(H(H(1f0e2d3c-4b5a-6978-8796-a5b4c3d2e1f0)))", digest)
}

func TestHasherFailure_Propagates(t *testing.T) {
	hashErr := errors.New("digest backend rejected input")
	failing := fingerprint.HasherFunc(func(data []byte) (string, error) {
		return "", hashErr
	})

	fp := newTestFingerprinter(t, sdk.WithHasher(failing))

	_, err := fp.Fingerprint(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, hashErr)

	var sdkErr *sdk.Error
	require.ErrorAs(t, err, &sdkErr)
	assert.Equal(t, sdk.KindHash, sdkErr.Kind)
}

func TestWithTracer_EmitsSpans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	defer tp.Shutdown(context.Background())

	fp := newTestFingerprinter(t, sdk.WithTracer(tp.Tracer("test")))

	_, err := fp.Fingerprint(context.Background())
	require.NoError(t, err)

	spans := recorder.Ended()
	require.NotEmpty(t, spans)

	names := make(map[string]bool, len(spans))
	for _, span := range spans {
		names[span.Name()] = true
	}
	assert.True(t, names["sdk.Fingerprint"])
	assert.True(t, names["sdk.FingerprintTree"])
	assert.True(t, names["sdk.Collect"])
}

func TestConcurrentCalls(t *testing.T) {
	fp := newTestFingerprinter(t)
	ctx := context.Background()

	want, err := fp.Fingerprint(ctx)
	require.NoError(t, err)

	done := make(chan string, 8)
	for i := 0; i < 8; i++ {
		go func() {
			digest, err := fp.Fingerprint(ctx)
			if err != nil {
				done <- "error: " + err.Error()
				return
			}
			done <- digest
		}()
	}
	for i := 0; i < 8; i++ {
		assert.Equal(t, want, <-done)
	}
}
