package app

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"time"

	"pacenote/internal/telemetry"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	Config Config
	Wire   *Wire
}

func New(cfg Config) (*App, error) {
	w, err := NewWire(cfg)
	if err != nil {
		return nil, err
	}
	return &App{Config: cfg, Wire: w}, nil
}

// Serve listens on Config.WebListen until ctx is cancelled.
func (a *App) Serve(ctx context.Context) error {
	l, err := net.Listen("tcp", a.Config.WebListen)
	if err != nil {
		return err
	}
	return a.ServeListener(ctx, l)
}

// ServeListener serves on l until ctx is cancelled, then shuts down
// gracefully. l is closed on return.
func (a *App) ServeListener(ctx context.Context, l net.Listener) error {
	server := &http.Server{
		Handler:           a.Wire.Handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Println("http listening start:", l.Addr())
	defer log.Println("http listener terminated:", l.Addr())

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve(l)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Receive listens for game telemetry on Config.UDPListen until ctx is
// cancelled. Cue calls and mode announcements are passed to call.
func (a *App) Receive(ctx context.Context, call func(string)) error {
	conn, err := net.ListenPacket("udp", a.Config.UDPListen)
	if err != nil {
		return err
	}
	return a.ReceivePacketConn(ctx, conn, call)
}

// ReceivePacketConn runs a telemetry session on conn. conn is closed on
// return.
func (a *App) ReceivePacketConn(ctx context.Context, conn net.PacketConn, call func(string)) error {
	defer conn.Close()

	var forward net.Addr
	if a.Config.UDPForward != "" {
		addr, err := net.ResolveUDPAddr("udp", a.Config.UDPForward)
		if err != nil {
			return err
		}
		forward = addr
	}
	session := telemetry.NewSession(a.Wire.Store, a.Config.CueOffset, call)
	return telemetry.Receive(ctx, conn, forward, session)
}
