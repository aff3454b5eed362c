package mcp

import (
	"context"
	"io"
	"os"

	"github.com/sourcegraph/jsonrpc2"
)

type stdioReadWriteCloser struct {
	reader io.ReadCloser
	writer io.WriteCloser
}

func (s *stdioReadWriteCloser) Read(p []byte) (int, error) {
	return s.reader.Read(p)
}

func (s *stdioReadWriteCloser) Write(p []byte) (int, error) {
	return s.writer.Write(p)
}

func (s *stdioReadWriteCloser) Close() error {
	rerr := s.reader.Close()
	werr := s.writer.Close()
	if rerr != nil {
		return rerr
	}
	return werr
}

type jsonrpcHandler struct {
	handler *Handler
}

func (j jsonrpcHandler) Handle(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	if req.Notif {
		j.handler.HandleNotification(req.Method)
		return
	}

	result, rpcErr := j.handler.Dispatch(ctx, req.Method, req.Params)
	if rpcErr != nil {
		if err := conn.ReplyWithError(ctx, req.ID, rpcErr); err != nil {
			log.Error("failed to send error reply", "method", req.Method, "error", err)
		}
		return
	}

	if err := conn.Reply(ctx, req.ID, result); err != nil {
		log.Error("failed to send reply", "method", req.Method, "error", err)
	}
}

// ServeStdio runs the MCP loop over stdin/stdout using newline-delimited
// JSON-RPC framing, returning when the client disconnects or the context
// is canceled.
func ServeStdio(ctx context.Context, handler *Handler) error {
	rwc := &stdioReadWriteCloser{
		reader: os.Stdin,
		writer: os.Stdout,
	}
	return Serve(ctx, handler, rwc)
}

func Serve(ctx context.Context, handler *Handler, rwc io.ReadWriteCloser) error {
	stream := jsonrpc2.NewPlainObjectStream(rwc)
	conn := jsonrpc2.NewConn(ctx, stream, jsonrpcHandler{handler: handler})

	select {
	case <-conn.DisconnectNotify():
		return nil
	case <-ctx.Done():
		conn.Close()
		<-conn.DisconnectNotify()
		return ctx.Err()
	}
}
