// Package telemetry receives the game's UDP telemetry stream.
//
// Each datagram is one fixed-size Packet. A Session watches the stage length
// carried by every packet: stages without a pacenote.log are recorded into
// telemetry.log by a Recorder, stages with one are played back by a Player,
// which calls out each cue as the car passes its position.
//
//	conn, _ := net.ListenPacket("udp", "127.0.0.1:20777")
//	s := telemetry.NewSession(store, 10, func(msg string) { fmt.Println(msg) })
//	err := telemetry.Receive(ctx, conn, nil, s)
package telemetry
