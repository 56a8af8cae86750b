package mesh

import (
	"os"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_checkpoint_roundtrip01(tst *testing.T) {

	chk.PrintTitle("checkpoint_roundtrip01")

	m, err := New(
		AxisSpec{Min: 0, Max: 1, Count: 2},
		AxisSpec{Min: 0, Max: 1, Count: 2},
		AxisSpec{Min: 0, Max: 1, Count: 2},
		AxisSpec{Min: 0, Max: 1, Count: 2},
		AxisSpec{Min: 0, Max: 1, Count: 2},
	)
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}
	for i := range m.ValPrev {
		m.ValPrev[i] = float64(i) * 0.5
	}

	if err := os.MkdirAll("/tmp/bmcmesh", 0777); err != nil {
		tst.Fatalf("MkdirAll failed: %v", err)
	}
	path := "/tmp/bmcmesh/checkpoint_roundtrip01.bmc"
	hdr := CheckpointHeader{
		AxisR: AxisSpec{Min: 0, Max: 1, Count: 2}, AxisPhi: AxisSpec{Min: 0, Max: 1, Count: 2},
		AxisZ: AxisSpec{Min: 0, Max: 1, Count: 2}, AxisMom1: AxisSpec{Min: 0, Max: 1, Count: 2},
		AxisMom2:       AxisSpec{Min: 0, Max: 1, Count: 2},
		HermiteWeights: []float64{1.0 / 6, 4.0 / 6, 1.0 / 6},
		Step:           3,
	}
	if err := m.Checkpoint(path, hdr); err != nil {
		tst.Fatalf("Checkpoint failed: %v", err)
	}

	loaded, loadedHdr, err := LoadCheckpoint(path)
	if err != nil {
		tst.Fatalf("LoadCheckpoint failed: %v", err)
	}
	chk.IntAssert(loadedHdr.Step, 3)
	chk.IntAssert(loaded.Size, m.Size)
	for i := range m.ValPrev {
		chk.Scalar(tst, "ValPrev[i]", 1e-15, loaded.ValPrev[i], m.ValPrev[i])
	}
}
