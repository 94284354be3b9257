// Package store persists tax returns in an embedded NATS JetStream
// key-value bucket. The server runs in-process without network ports; the
// data directory holds the JetStream file store, so returns survive
// restarts.
package store

import (
	"errors"
	"time"

	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/steuerpilot/steuerpilot/internal/logger"
)

// startEmbedded starts the in-process NATS server with JetStream backed by
// dataDir.
func startEmbedded(dataDir string) (*server.Server, error) {
	logger.Debug("store: starting embedded NATS, data dir %s", dataDir)

	opts := &server.Options{
		JetStream:  true,
		StoreDir:   dataDir,
		DontListen: true, // in-process only, no network ports
	}

	ns, err := server.NewServer(opts)
	if err != nil {
		return nil, err
	}

	go ns.Start()

	if !ns.ReadyForConnections(4 * time.Second) {
		return nil, errors.New("store: embedded NATS failed to start within timeout")
	}
	return ns, nil
}

// connectInProcess opens a connection that bypasses the network stack.
func connectInProcess(ns *server.Server) (*nats.Conn, error) {
	return nats.Connect("", nats.InProcessServer(ns))
}

// shutdown drains the connection, then stops the server. Both steps carry a
// timeout so a wedged JetStream cannot hang process exit.
func shutdown(nc *nats.Conn, ns *server.Server) error {
	if nc != nil {
		drainDone := make(chan error, 1)
		go func() {
			drainDone <- nc.Drain()
		}()
		select {
		case err := <-drainDone:
			if err != nil {
				logger.Warn("store: NATS drain failed, forcing close: %v", err)
				nc.Close()
			}
		case <-time.After(2 * time.Second):
			logger.Warn("store: NATS drain timed out, forcing close")
			nc.Close()
		}
	}

	if ns != nil {
		ns.Shutdown()
		shutdownDone := make(chan struct{})
		go func() {
			ns.WaitForShutdown()
			close(shutdownDone)
		}()
		select {
		case <-shutdownDone:
		case <-time.After(5 * time.Second):
			return errors.New("store: embedded NATS shutdown timed out")
		}
	}
	return nil
}

// newJetStream builds the JetStream context used for the KV bucket.
func newJetStream(nc *nats.Conn) (jetstream.JetStream, error) {
	return jetstream.New(nc)
}
