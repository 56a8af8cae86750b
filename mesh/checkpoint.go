package mesh

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"

	"github.com/cpmech/gosl/io"
)

// CheckpointHeader records everything a reader needs to reproduce the
// update step that produced a persisted ValPrev buffer: the five axis
// specs and the Hermite quadrature rule in force when the checkpoint
// was written, so a reader can reproduce updates without recomputing
// the quadrature elsewhere.
type CheckpointHeader struct {
	AxisR, AxisPhi, AxisZ, AxisMom1, AxisMom2 AxisSpec
	HermiteWeights                            []float64
	Step                                      int
}

// Checkpoint writes hdr and ValPrev to path: a 4-byte little-endian
// header length, the header as JSON, then ValPrev as Size raw
// little-endian float64s in canonical linearization order. Uses
// gosl/io.WriteFile, concatenating a header buffer and a payload buffer
// into one file the same way a VTU writer concatenates XML and raw
// data blocks. No implicit endianness conversion is performed; the
// format documents the host encoding (little-endian) explicitly.
func (o *Mesh) Checkpoint(path string, hdr CheckpointHeader) error {
	o.checkBuilt()
	hdrBytes, err := json.Marshal(hdr)
	if err != nil {
		return fmt.Errorf("mesh: failed to encode checkpoint header: %w", err)
	}

	var lenBuf bytes.Buffer
	var lenArr [4]byte
	binary.LittleEndian.PutUint32(lenArr[:], uint32(len(hdrBytes)))
	lenBuf.Write(lenArr[:])

	var hdrBuf bytes.Buffer
	hdrBuf.Write(hdrBytes)

	payload := make([]byte, 8*len(o.ValPrev))
	for i, v := range o.ValPrev {
		binary.LittleEndian.PutUint64(payload[i*8:], math.Float64bits(v))
	}
	var payloadBuf bytes.Buffer
	payloadBuf.Write(payload)

	if err := io.WriteFile(path, &lenBuf, &hdrBuf, &payloadBuf); err != nil {
		return fmt.Errorf("mesh: failed to write checkpoint %q: %w", path, err)
	}
	return nil
}

// LoadCheckpoint reconstructs a Mesh from a file written by Checkpoint:
// it reads the header to rebuild the axes, allocates buffers via New,
// and fills ValPrev from the payload.
func LoadCheckpoint(path string) (o *Mesh, hdr CheckpointHeader, err error) {
	buf, err := io.ReadFile(path)
	if err != nil {
		err = fmt.Errorf("mesh: failed to read checkpoint %q: %w", path, err)
		return
	}
	if len(buf) < 4 {
		err = fmt.Errorf("mesh: checkpoint %q is too short to hold a header length", path)
		return
	}
	hdrLen := int(binary.LittleEndian.Uint32(buf[:4]))
	buf = buf[4:]
	if len(buf) < hdrLen {
		err = fmt.Errorf("mesh: checkpoint %q is too short to hold its header", path)
		return
	}
	if err = json.Unmarshal(buf[:hdrLen], &hdr); err != nil {
		err = fmt.Errorf("mesh: failed to decode checkpoint header in %q: %w", path, err)
		return
	}
	buf = buf[hdrLen:]

	o, err = New(hdr.AxisR, hdr.AxisPhi, hdr.AxisZ, hdr.AxisMom1, hdr.AxisMom2)
	if err != nil {
		return
	}
	if len(buf) < 8*o.Size {
		err = fmt.Errorf("mesh: checkpoint %q payload is shorter than the %d values its header describes", path, o.Size)
		return
	}
	for i := range o.ValPrev {
		o.ValPrev[i] = math.Float64frombits(binary.LittleEndian.Uint64(buf[i*8:]))
	}
	return
}
