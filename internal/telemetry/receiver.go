package telemetry

import (
	"context"
	"log"
	"net"
)

// PacketHandler consumes decoded packets on the receiving goroutine.
type PacketHandler interface {
	HandlePacket(p *Packet)
}

const maxDatagram = 4096

// Receive reads datagrams from conn until ctx is cancelled, then closes conn
// and returns nil. Every datagram is relayed unchanged to forward when it is
// non-nil. Datagrams of any size other than PacketLength are not decoded.
func Receive(ctx context.Context, conn net.PacketConn, forward net.Addr, h PacketHandler) error {
	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	log.Println("udp listening start:", conn.LocalAddr())
	defer log.Println("udp listener terminated:", conn.LocalAddr())

	buf := make([]byte, maxDatagram)
	for {
		n, _, err := conn.ReadFrom(buf)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		if forward != nil {
			if _, err := conn.WriteTo(buf[:n], forward); err != nil {
				log.Print(err)
			}
		}
		if n != PacketLength {
			continue
		}
		p := new(Packet)
		if err := p.UnmarshalBinary(buf[:n]); err != nil {
			log.Print(err)
			continue
		}
		h.HandlePacket(p)
	}
}
