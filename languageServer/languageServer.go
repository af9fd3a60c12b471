package languageServer

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net"
	"net/http"
	"os"

	"github.com/gorilla/websocket"
	"github.com/sourcegraph/jsonrpc2"
	jsonrpc2ws "github.com/sourcegraph/jsonrpc2/websocket"
	"github.gatech.edu/CS2200/CS2200-Assembly-Server/util"
)

type stdrwc struct{}

func (stdrwc) Read(p []byte) (int, error) {
	return os.Stdin.Read(p)
}

func (stdrwc) Write(p []byte) (int, error) {
	return os.Stdout.Write(p)
}

func (stdrwc) Close() error {
	if err := os.Stdin.Close(); err != nil {
		return err
	}
	return os.Stdout.Close()
}

// ListenAndServe serves a single session over stdin and stdout until the client disconnects.
func ListenAndServe() {
	<-jsonrpc2.NewConn(context.Background(), jsonrpc2.NewBufferedStream(stdrwc{}, jsonrpc2.VSCodeObjectCodec{}), NewHandler()).DisconnectNotify()
}

// ListenAndServeTCP accepts any number of sessions on addr so the server can be debugged
// remotely. It only returns if the listener fails.
func ListenAndServeTCP(addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	defer lis.Close()

	log.Println("CS2200 Language Server: listening for TCP connections on", addr)

	connectionCount := 0
	for {
		conn, err := lis.Accept()
		if err != nil {
			return err
		}
		connectionCount = connectionCount + 1
		connectionID := connectionCount
		log.Printf("CS2200 Language Server: received incoming connection #%d\n", connectionID)
		jsonrpc2Connection := jsonrpc2.NewConn(context.Background(), jsonrpc2.NewBufferedStream(conn, jsonrpc2.VSCodeObjectCodec{}), NewHandler())
		go func() {
			<-jsonrpc2Connection.DisconnectNotify()
			log.Printf("CS2200 Language Server: connection #%d closed\n", connectionID)
		}()
	}
}

// ListenAndServeWebSocket serves sessions to browser-hosted editors, one per WebSocket.
func ListenAndServeWebSocket(addr string) error {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("CS2200 Language Server: websocket upgrade failed:", err)
			return
		}
		log.Println("CS2200 Language Server: websocket session opened from", r.RemoteAddr)
		conn := jsonrpc2.NewConn(r.Context(), jsonrpc2ws.NewObjectStream(ws), NewHandler())
		<-conn.DisconnectNotify()
		log.Println("CS2200 Language Server: websocket session closed from", r.RemoteAddr)
	})

	log.Println("CS2200 Language Server: listening for WebSocket connections on", addr)
	return http.ListenAndServe(addr, mux)
}

type handler struct {
	s *session
}

// NewHandler returns a handler owning a fresh session: no open documents and the default
// instruction table.
func NewHandler() jsonrpc2.Handler {
	return handler{s: newSession()}
}

func (h handler) Handle(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	util.LogF("CS2200 Language Server: received request: %s", req.Method)
	switch req.Method {
	case "initialize":
		h.s.handleInitialize(conn, req)
	case "initialized":
	case "textDocument/didOpen":
		h.s.documentOpenNotification(conn, req)
	case "textDocument/didClose":
		h.s.documentCloseNotification(conn, req)
	case "textDocument/didChange":
		h.s.documentChangeNotification(conn, req)
	case "textDocument/diagnostic":
		h.s.documentDiagnostics(conn, req)
	case "textDocument/willSaveWaitUntil":
		h.s.documentWillSaveWaitUntil(conn, req)
	case "textDocument/hover":
		h.s.hoverRequest(conn, req)
	case "textDocument/completion":
		h.s.completionRequest(conn, req)
	case "workspace/didChangeConfiguration":
		h.s.configurationChangeNotification(conn, req)
	case "workspace/executeCommand":
		h.s.executeCommand(conn, req)

	// quitting
	case "shutdown":
		conn.Reply(context.Background(), req.ID, nil)
	case "exit":
		conn.Close()

	default:
		if !req.Notif {
			conn.ReplyWithError(context.Background(), req.ID, &jsonrpc2.Error{
				Code:    jsonrpc2.CodeMethodNotFound,
				Message: "method not supported: " + req.Method,
			})
		}
	}
}

var errMissingParams = errors.New("missing parameters")

func decodeParams(req *jsonrpc2.Request, v interface{}) error {
	if req.Params == nil {
		return errMissingParams
	}
	return json.Unmarshal(*req.Params, v)
}

// replyInvalidParams answers a request whose params could not be decoded. Notifications get
// no reply.
func replyInvalidParams(conn *jsonrpc2.Conn, req *jsonrpc2.Request, err error) {
	util.LogF("CS2200 Language Server: invalid parameters for %s: %v", req.Method, err)
	if req.Notif {
		return
	}
	conn.ReplyWithError(context.Background(), req.ID, &jsonrpc2.Error{
		Code:    jsonrpc2.CodeInvalidParams,
		Message: "invalid parameters: " + err.Error(),
	})
}

func (s *session) handleInitialize(conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	// parse req params as InitializeParams
	// return InitializeResult
	decodedParams := InitializeParams{}
	err := decodeParams(req, &decodedParams)
	if err != nil {
		replyInvalidParams(conn, req, err)
		return
	}

	s.setWorkspaceRoot(decodedParams)
	if decodedParams.InitializationOptions != nil {
		s.isaFilePath = decodedParams.InitializationOptions.IsaFilePath
	}

	result := InitializeResult{}
	result.Capabilities.TextDocumentSync = 1
	result.Capabilities.HoverProvider = true
	result.Capabilities.ExecuteCommandProvider.Commands = supportedCommands
	result.ServerInfo.Name = "cs2200asm"
	conn.Reply(context.Background(), req.ID, result)

	s.reloadSpec(conn)
	registerRemainingCapabilities(conn)
}

func registerRemainingCapabilities(conn *jsonrpc2.Conn) {
	// send register capability requests for all remaining capabilities
	// textDocumentSync.willSaveWaitUntil

	util.LogF("CS2200 Language Server: registering remaining capabilities")
	params := RegistrationParams{
		Registrations: []Registration{
			{
				ID:     "textDocumentSync.willSaveWaitUntil",
				Method: "textDocument/willSaveWaitUntil",
				RegisterOptions: TextDocumentRegistrationOptions{
					DocumentSelector: []DocumentFilter{
						{
							Scheme:   "file",
							Language: languageID,
						},
					},
				},
			},
		},
	}

	// the reply is read by the same loop that is running this handler
	go conn.Call(context.Background(), "client/registerCapability", params, nil)
	util.LogF("CS2200 Language Server: registered remaining capabilities")
}
