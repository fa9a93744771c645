package xdlms_test

import (
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/meterwise/xdlms-go/xdlms"
)

func TestVectorManifest(t *testing.T) {
	vf, err := xdlms.LoadVectors(filepath.Join("testdata", "vectors.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	logger := zap.NewNop().Sugar()
	for i := range vf.Vectors {
		v := &vf.Vectors[i]
		t.Run(v.Name, func(t *testing.T) {
			if err := v.Verify(); err != nil {
				t.Errorf("verify: %v", err)
			}
			a, err := v.Decode()
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			xdlms.Describe(logger, a)
		})
	}
}

func TestLoadVectorsMissingFile(t *testing.T) {
	if _, err := xdlms.LoadVectors(filepath.Join("testdata", "no-such-file.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
