package languageServer

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/sourcegraph/jsonrpc2"
	"github.gatech.edu/CS2200/CS2200-Assembly-Server/isa"
	"github.gatech.edu/CS2200/CS2200-Assembly-Server/util"
)

const (
	commandSelectIsaFile = "cs2200asm.selectIsaFile"
	commandReloadIsa     = "cs2200asm.reloadIsa"
	commandResetIsa      = "cs2200asm.resetIsa"
)

var supportedCommands = []string{commandSelectIsaFile, commandReloadIsa, commandResetIsa}

func (s *session) setWorkspaceRoot(params InitializeParams) {
	if params.RootURI != "" {
		u, err := url.Parse(string(params.RootURI))
		if err == nil && u.Scheme == "file" {
			s.workspaceRoot = filepath.FromSlash(u.Path)
			return
		}
		util.LogF("CS2200 Language Server: ignoring root uri %s", params.RootURI)
	}
	s.workspaceRoot = params.RootPath
}

func showMessage(conn *jsonrpc2.Conn, t MessageType, message string) {
	conn.Notify(context.Background(), "window/showMessage", ShowMessageParams{
		Type:    t,
		Message: message,
	})
}

// reloadSpec makes the table named by the isaFilePath setting active, falling back to the default
// table when the setting is empty or the file cannot be used.
func (s *session) reloadSpec(conn *jsonrpc2.Conn) {
	path := isa.ResolveIsaPath(s.workspaceRoot, s.isaFilePath)
	if path == "" {
		s.spec.Reset()
		util.LogF("CS2200 Language Server: using the default instruction table")
		return
	}

	if err := s.spec.Load(path); err != nil {
		reason := err.Error()
		var loadErr *isa.SpecLoadError
		if errors.As(err, &loadErr) {
			reason = loadErr.Path + ": " + loadErr.Reason.String()
		}
		showMessage(conn, MessageTypeError, "Failed to load ISA file: "+reason)
		return
	}
	showMessage(conn, MessageTypeInfo, "Loaded ISA specs from: "+s.isaFilePath)
}

func (s *session) configurationChangeNotification(conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	decodedParams := DidChangeConfigurationParams{}
	err := decodeParams(req, &decodedParams)
	if err != nil {
		replyInvalidParams(conn, req, err)
		return
	}

	settings := decodedParams.Settings.CS2200Asm
	if settings == nil || settings.IsaFilePath == s.isaFilePath {
		return
	}

	s.isaFilePath = settings.IsaFilePath
	s.reloadSpec(conn)
	s.revalidateAll(conn)
}

// workspaceRelative shortens path to be relative to the workspace root when it lies inside it.
func (s *session) workspaceRelative(path string) string {
	if s.workspaceRoot == "" || !filepath.IsAbs(path) {
		return path
	}
	rel, err := filepath.Rel(s.workspaceRoot, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return rel
}

func (s *session) executeCommand(conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	decodedParams := ExecuteCommandParams{}
	err := decodeParams(req, &decodedParams)
	if err != nil {
		replyInvalidParams(conn, req, err)
		return
	}

	switch decodedParams.Command {
	case commandSelectIsaFile:
		var path string
		if len(decodedParams.Arguments) == 0 {
			replyInvalidParams(conn, req, errors.New("expected the selected file path"))
			return
		}
		if err := json.Unmarshal(decodedParams.Arguments[0], &path); err != nil {
			replyInvalidParams(conn, req, err)
			return
		}
		s.isaFilePath = s.workspaceRelative(path)
		s.reloadSpec(conn)
	case commandReloadIsa:
		s.reloadSpec(conn)
	case commandResetIsa:
		s.isaFilePath = ""
		s.spec.Reset()
		showMessage(conn, MessageTypeInfo, "Using the default CS2200 instruction table")
	default:
		replyInvalidParams(conn, req, errors.New("unknown command "+decodedParams.Command))
		return
	}

	s.revalidateAll(conn)
	conn.Reply(context.Background(), req.ID, s.isaFilePath)
}
