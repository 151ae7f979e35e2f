package telemetry_test

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pacenote/internal/telemetry"
)

func TestPacket_WireSize(t *testing.T) {
	assert.Equal(t, telemetry.PacketLength, binary.Size(telemetry.Packet{}))
}

func TestPacket_FieldOffsets(t *testing.T) {
	in := telemetry.Packet{
		PacketUID:            42,
		ShiftlightsRPMValid:  true,
		VehiclePositionX:     1.5,
		VehicleClutch:        1,
		StageCurrentDistance: 123.25,
		StageLength:          18606.03125,
	}
	b, err := in.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, b, telemetry.PacketLength)

	le := binary.LittleEndian
	assert.Equal(t, uint64(42), le.Uint64(b[0:8]))
	assert.Equal(t, byte(1), b[36])
	assert.Equal(t, float32(1.5), math.Float32frombits(le.Uint32(b[49:53])))
	assert.Equal(t, float32(1), math.Float32frombits(le.Uint32(b[205:209])))
	assert.Equal(t, 123.25, math.Float64frombits(le.Uint64(b[221:229])))
	assert.Equal(t, 18606.03125, math.Float64frombits(le.Uint64(b[229:237])))

	var out telemetry.Packet
	require.NoError(t, out.UnmarshalBinary(b))
	assert.Equal(t, in, out)
}

func TestPacket_Short(t *testing.T) {
	var p telemetry.Packet
	err := p.UnmarshalBinary(make([]byte, telemetry.PacketLength-1))
	assert.ErrorIs(t, err, telemetry.ErrShortPacket)
}
