package telemetry

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

// PacketLength is the size in bytes of one telemetry datagram.
const PacketLength = 237

var ErrShortPacket = errors.New("short telemetry packet")

// Packet is one telemetry sample. Fields are little-endian and packed in
// declaration order; positions are metres in game world space.
type Packet struct {
	PacketUID      uint64
	GameTotalTime  float32
	GameDeltaTime  float32
	GameFrameCount uint64

	ShiftlightsFraction float32
	ShiftlightsRPMStart float32
	ShiftlightsRPMEnd   float32
	ShiftlightsRPMValid bool

	VehicleGearIndex        uint8
	VehicleGearIndexNeutral uint8
	VehicleGearIndexReverse uint8
	VehicleGearMaximum      uint8

	VehicleSpeed             float32
	VehicleTransmissionSpeed float32

	VehiclePositionX, VehiclePositionY, VehiclePositionZ             float32
	VehicleVelocityX, VehicleVelocityY, VehicleVelocityZ             float32
	VehicleAccelerationX, VehicleAccelerationY, VehicleAccelerationZ float32

	VehicleLeftDirectionX, VehicleLeftDirectionY, VehicleLeftDirectionZ          float32
	VehicleForwardDirectionX, VehicleForwardDirectionY, VehicleForwardDirectionZ float32
	VehicleUpDirectionX, VehicleUpDirectionY, VehicleUpDirectionZ                float32

	// Wheel order: back left, back right, front left, front right.
	VehicleHubPosition      [4]float32
	VehicleHubVelocity      [4]float32
	VehicleCPForwardSpeed   [4]float32
	VehicleBrakeTemperature [4]float32

	VehicleEngineRPMMax     float32
	VehicleEngineRPMIdle    float32
	VehicleEngineRPMCurrent float32

	VehicleThrottle  float32
	VehicleBrake     float32
	VehicleClutch    float32
	VehicleSteering  float32
	VehicleHandbrake float32

	StageCurrentTime     float32
	StageCurrentDistance float64
	StageLength          float64
}

// UnmarshalBinary decodes the first PacketLength bytes of b.
func (p *Packet) UnmarshalBinary(b []byte) error {
	if len(b) < PacketLength {
		return fmt.Errorf("%w: %d bytes", ErrShortPacket, len(b))
	}
	return binary.Read(bytes.NewReader(b[:PacketLength]), binary.LittleEndian, p)
}

// MarshalBinary encodes p in wire format.
func (p *Packet) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(PacketLength)
	if err := binary.Write(&buf, binary.LittleEndian, p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
