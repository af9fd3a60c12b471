package languageServer

import (
	"context"

	"github.com/sourcegraph/jsonrpc2"
	"github.gatech.edu/CS2200/CS2200-Assembly-Server/assembler"
	"github.gatech.edu/CS2200/CS2200-Assembly-Server/isa"
	"github.gatech.edu/CS2200/CS2200-Assembly-Server/util"
)

// session is the state of one client connection. The jsonrpc2 connection delivers requests one
// at a time, so handlers do not lock.
type session struct {
	documentMap   map[DocumentUri]TextDocumentItem
	spec          *isa.ActiveSpec
	workspaceRoot string
	isaFilePath   string // the setting as the client sent it
}

func newSession() *session {
	return &session{
		documentMap: make(map[DocumentUri]TextDocumentItem),
		spec:        isa.NewActiveSpec(),
	}
}

func (s *session) validateDocument(uri DocumentUri) []assembler.Diagnostic {
	doc, ok := s.documentMap[uri]
	if !ok || doc.LanguageID != languageID {
		return make([]assembler.Diagnostic, 0)
	}

	res := assembler.ValidateText(doc.Text, s.spec.Current())
	doc.lastValidationResult = res
	s.documentMap[uri] = doc
	return res.Diagnostics
}

func (s *session) publishDiagnostics(conn *jsonrpc2.Conn, uri DocumentUri) {
	diagnostics := s.validateDocument(uri)
	conn.Notify(context.Background(), "textDocument/publishDiagnostics", PublishDiagnosticsParams{
		URI:         uri,
		Version:     s.documentMap[uri].Version,
		Diagnostics: diagnostics,
	})
}

// revalidateAll republishes diagnostics for every open document, after the instruction table
// changed.
func (s *session) revalidateAll(conn *jsonrpc2.Conn) {
	for uri, doc := range s.documentMap {
		if doc.LanguageID == languageID {
			s.publishDiagnostics(conn, uri)
		}
	}
}

func (s *session) documentOpenNotification(conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	// parse req params as DidOpenTextDocumentParams
	// add document to documents map
	decodedParams := DidOpenTextDocumentParams{}
	err := decodeParams(req, &decodedParams)
	if err != nil {
		replyInvalidParams(conn, req, err)
		return
	}

	s.documentMap[decodedParams.TextDocument.URI] = decodedParams.TextDocument
	if decodedParams.TextDocument.LanguageID != languageID {
		util.LogF("CS2200 Language Server: ignoring %s document %s", decodedParams.TextDocument.LanguageID, decodedParams.TextDocument.URI)
		return
	}
	s.publishDiagnostics(conn, decodedParams.TextDocument.URI)
}

func (s *session) documentCloseNotification(conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	// parse req params as DidCloseTextDocumentParams
	// remove document from documents map and clear its diagnostics
	decodedParams := DidCloseTextDocumentParams{}
	err := decodeParams(req, &decodedParams)
	if err != nil {
		replyInvalidParams(conn, req, err)
		return
	}

	delete(s.documentMap, decodedParams.TextDocument.URI)
	conn.Notify(context.Background(), "textDocument/publishDiagnostics", PublishDiagnosticsParams{
		URI:         decodedParams.TextDocument.URI,
		Diagnostics: make([]assembler.Diagnostic, 0),
	})
}

func (s *session) documentChangeNotification(conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	// parse req params as DidChangeTextDocumentParams
	// update document in documents map
	decodedParams := DidChangeTextDocumentParams{}
	err := decodeParams(req, &decodedParams)
	if err != nil {
		replyInvalidParams(conn, req, err)
		return
	}

	doc, ok := s.documentMap[decodedParams.TextDocument.URI]
	if !ok || len(decodedParams.ContentChanges) == 0 {
		return
	}
	// full sync: the last change holds the whole document
	doc.Text = decodedParams.ContentChanges[len(decodedParams.ContentChanges)-1].Text
	doc.Version = decodedParams.TextDocument.Version
	s.documentMap[decodedParams.TextDocument.URI] = doc

	if doc.LanguageID == languageID {
		s.publishDiagnostics(conn, decodedParams.TextDocument.URI)
	}
}

func (s *session) documentDiagnostics(conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	// parse req params as DocumentDiagnosticsParams
	// validate document and return diagnostics
	decodedParams := DocumentDiagnosticsParams{}
	err := decodeParams(req, &decodedParams)
	if err != nil {
		replyInvalidParams(conn, req, err)
		return
	}

	diagnostics := s.validateDocument(decodedParams.TextDocument.URI)
	conn.Reply(context.Background(), req.ID, DocumentDiagnosticsReport{
		Kind:  "full",
		Items: diagnostics,
	})
}

func (s *session) documentWillSaveWaitUntil(conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	// parse req params as DocumentWillSaveWaitUntilParams
	// reformat document and return edits
	decodedParams := DocumentWillSaveWaitUntilParams{}
	err := decodeParams(req, &decodedParams)
	if err != nil {
		replyInvalidParams(conn, req, err)
		return
	}

	edits := make([]TextEdit, 0)
	doc, ok := s.documentMap[decodedParams.TextDocument.URI]
	if !ok || doc.LanguageID != languageID {
		conn.Reply(context.Background(), req.ID, edits)
		return
	}

	formatted := assembler.Reformat(doc.Text)
	if formatted != doc.Text {
		lines := assembler.SplitLines(doc.Text)
		edits = append(edits, TextEdit{
			Range: assembler.TextRange{
				Start: assembler.TextPosition{Line: 0, Char: 0},
				End:   assembler.TextPosition{Line: len(lines) - 1, Char: len(lines[len(lines)-1])},
			},
			NewText: formatted,
		})
	}

	conn.Reply(context.Background(), req.ID, edits)
	util.LogF("CS2200 Language Server: reformatted document %s", decodedParams.TextDocument.URI)
}
