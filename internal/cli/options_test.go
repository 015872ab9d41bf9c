package cli

import (
	"errors"
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func parse(argv ...string) (Options, error) {
	fs := NewFlagSet("unilog")
	fs.SetOutput(io.Discard)
	return ParseArgs(fs, argv)
}

func TestParseArgsLongFlags(t *testing.T) {
	opt, err := parse("--input", "in", "--output", "out")
	assert.NoError(t, err)
	assert.Equal(t, "in", opt.Input)
	assert.Equal(t, "out", opt.Output)
	assert.Equal(t, DefaultLogName, opt.LogName)
	assert.False(t, opt.Quiet)
}

func TestParseArgsAliases(t *testing.T) {
	opt, err := parse("-i", "in", "-o", "out", "-q")
	assert.NoError(t, err)
	assert.Equal(t, "in", opt.Input)
	assert.Equal(t, "out", opt.Output)
	assert.True(t, opt.Quiet)
}

func TestParseArgsMissingBoth(t *testing.T) {
	_, err := parse()
	assert.ErrorContains(t, err, "--input and --output")
}

func TestParseArgsMissingInput(t *testing.T) {
	_, err := parse("-o", "out")
	assert.ErrorContains(t, err, "--input")
}

func TestParseArgsMissingOutput(t *testing.T) {
	_, err := parse("-i", "in")
	assert.ErrorContains(t, err, "--output")
}

func TestParseArgsVersionSkipsValidation(t *testing.T) {
	opt, err := parse("--version")
	assert.NoError(t, err)
	assert.True(t, opt.Version)
}

func TestParseArgsHelp(t *testing.T) {
	_, err := parse("-h")
	assert.True(t, errors.Is(err, flag.ErrHelp))
}

func TestParseArgsLogNameOverride(t *testing.T) {
	opt, err := parse("-i", "in", "-o", "out", "--log-name", "assembly.log")
	assert.NoError(t, err)
	assert.Equal(t, "assembly.log", opt.LogName)
}

func TestParseArgsEmptyLogName(t *testing.T) {
	_, err := parse("-i", "in", "-o", "out", "--log-name", "")
	assert.ErrorContains(t, err, "--log-name")
}
