package core_test

import (
	"strings"
	"testing"

	"github.com/lukosev/flipbook/core"
)

// the GL-facing behaviour of CompileShader and LinkProgram needs a
// current context and is exercised by running the viewer; these tests
// cover the error values the cmd layer matches on

func TestCompileErrorIdentifiesStage(t *testing.T) {
	err := &core.CompileError{
		Stage: core.FragmentShaderType,
		Log:   "0:3(1): error: syntax error, unexpected NEW_IDENTIFIER",
	}

	if !strings.HasPrefix(err.Error(), "fragment shader:") {
		t.Errorf("compile error should name the failing stage: %q", err.Error())
	}
	if !strings.Contains(err.Error(), "syntax error") {
		t.Errorf("compile error should carry the diagnostic: %q", err.Error())
	}
}

func TestCompileErrorVertexStage(t *testing.T) {
	err := &core.CompileError{Stage: core.VertexShaderType, Log: "bad"}
	if !strings.HasPrefix(err.Error(), "vertex shader:") {
		t.Errorf("wrong stage in %q", err.Error())
	}
}

func TestLinkErrorMessage(t *testing.T) {
	err := &core.LinkError{Log: "error: unresolved reference"}
	if !strings.Contains(err.Error(), "unresolved reference") {
		t.Errorf("link error should carry the diagnostic: %q", err.Error())
	}
}

func TestShaderTypeNames(t *testing.T) {
	if core.VertexShaderType.String() != "vertex" {
		t.Error("vertex stage misnamed")
	}
	if core.FragmentShaderType.String() != "fragment" {
		t.Error("fragment stage misnamed")
	}
}
