package repl

import (
	"context"

	opentracing "github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	uuid "github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"

	"github.com/alecthomas/expr"
	"github.com/alecthomas/expr/lexer"
)

// Session evaluates expressions on behalf of one interactive user.
//
// Each evaluation is traced, with one child span per stage, and logged with the
// session's ID.
type Session struct {
	ID  uuid.UUID
	log *logrus.Entry
}

// NewSession creates a new Session with a random ID.
func NewSession(log *logrus.Entry) (*Session, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	return &Session{
		ID:  id,
		log: log.WithField("session", id.String()),
	}, nil
}

// Log returns the session's logger.
func (s *Session) Log() *logrus.Entry {
	return s.log
}

// Eval lexes, parses with the given options and evaluates line.
//
// The tree is returned whenever parsing succeeded, even if evaluation then failed.
func (s *Session) Eval(ctx context.Context, line string, options ...expr.Option) (int64, expr.Node, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "expr.session.eval")
	span.SetTag("session", s.ID.String())
	span.SetTag("expr", line)
	defer span.Finish()

	log := s.log.WithField("expr", line)

	var tokens []lexer.Token
	lexErr := stage(ctx, "expr.lex", func(span opentracing.Span) (err error) {
		tokens, err = lexer.Lex(line)
		span.SetTag("tokens", len(tokens))
		return err
	})

	var ast expr.Node
	err := stage(ctx, "expr.parse", func(span opentracing.Span) (err error) {
		ast, err = expr.Parse(tokens, lexErr, options...)
		if err == nil {
			span.SetTag("depth", ast.Depth())
		}
		return err
	})
	if err != nil {
		ext.Error.Set(span, true)
		log.WithField("error", err).Debug("parse failed")
		return 0, nil, err
	}

	var value int64
	err = stage(ctx, "expr.evaluate", func(span opentracing.Span) (err error) {
		value, err = expr.Evaluate(ast)
		return err
	})
	if err != nil {
		ext.Error.Set(span, true)
		log.WithField("error", err).Debug("evaluation failed")
		return 0, ast, err
	}

	log.WithField("result", value).Debug("evaluated")
	return value, ast, nil
}

// stage runs fn inside a child span named operation, tagging the span if fn fails.
func stage(ctx context.Context, operation string, fn func(span opentracing.Span) error) error {
	span, _ := opentracing.StartSpanFromContext(ctx, operation)
	defer span.Finish()
	err := fn(span)
	if err != nil {
		ext.Error.Set(span, true)
		span.LogKV("error", err.Error())
	}
	return err
}
