package main

import (
	"github.com/dhamidi/parsec"
	"github.com/dhamidi/parsec/grammars/jsonish"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"
)

const lsName = "parsec"

func newServeLSPCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "serve-lsp",
		Short:         "Run a diagnostics-only Language Server Protocol server for jsonish documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			commonlog.Configure(1, nil)
			s := newLintServer()
			return s.server.RunStdio()
		},
	}
}

type lintServer struct {
	handler protocol.Handler
	server  *server.Server
}

func newLintServer() *lintServer {
	ls := &lintServer{}
	ls.handler = protocol.Handler{
		Initialize:            ls.initialize,
		Initialized:           ls.initialized,
		Shutdown:              ls.shutdown,
		TextDocumentDidOpen:   ls.diagnoseOnOpen,
		TextDocumentDidChange: ls.diagnoseOnChange,
	}
	ls.server = server.NewServer(&ls.handler, lsName, false)
	return ls
}

func (ls *lintServer) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := ls.handler.CreateServerCapabilities()
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
	}
	version := "0.1.0"
	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &version,
		},
	}, nil
}

func (ls *lintServer) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (ls *lintServer) shutdown(ctx *glsp.Context) error {
	return nil
}

func (ls *lintServer) diagnoseOnOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	ls.publishDiagnostics(ctx, params.TextDocument.URI, params.TextDocument.Text)
	return nil
}

func (ls *lintServer) diagnoseOnChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	if change, ok := params.ContentChanges[len(params.ContentChanges)-1].(protocol.TextDocumentContentChangeEventWhole); ok {
		ls.publishDiagnostics(ctx, params.TextDocument.URI, change.Text)
	}
	return nil
}

func (ls *lintServer) publishDiagnostics(ctx *glsp.Context, uri, text string) {
	var diags []protocol.Diagnostic

	if _, err := jsonish.Parse(text); err != nil {
		diags = append(diags, diagnosticFor(err, text))
	}

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diags,
	})
}

// diagnosticFor translates a jsonish parse error into an LSP Diagnostic at
// its actual failure position (the 1-based line/column GetLineNum computes
// from the *parsec.ParseError's Pos) rather than a fixed {0,0}-{0,1} range. LSP positions are 0-based, so both are shifted
// down by one; the range covers a single character since a *parsec.ParseError
// names a position, not a span.
func diagnosticFor(err error, text string) protocol.Diagnostic {
	severity := protocol.DiagnosticSeverityError
	line, col := 0, 0
	if pe, ok := err.(*parsec.ParseError); ok {
		l, c := parsec.GetLineNum(pe.Input, pe.Pos)
		line, col = l-1, c-1
	}
	if line < 0 {
		line = 0
	}
	if col < 0 {
		col = 0
	}
	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: protocol.UInteger(line), Character: protocol.UInteger(col)},
			End:   protocol.Position{Line: protocol.UInteger(line), Character: protocol.UInteger(col + 1)},
		},
		Severity: &severity,
		Source:   strPtr(lsName),
		Message:  err.Error(),
	}
}

func boolPtr(b bool) *bool { return &b }
func syncKindPtr(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind { return &k }
func strPtr(s string) *string { return &s }
