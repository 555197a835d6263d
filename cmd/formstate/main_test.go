package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-formstate/pkg/formstate"
	"github.com/goliatone/go-formstate/pkg/testsupport"
)

type result struct {
	out    string
	errOut string
	err    error
}

func run(t *testing.T, driver *testsupport.StubDriver, args ...string) result {
	t.Helper()
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())

	var out, errOut bytes.Buffer
	a := newApp(&out, &errOut)
	if driver != nil {
		a.driver = driver
	}
	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return result{out: out.String(), errOut: errOut.String(), err: err}
}

func TestCheck_Valid(t *testing.T) {
	res := run(t, nil, "check", "--set", "firstName=Ada", "--set", "lastName=Lovelace")
	require.NoError(t, res.err)
	assert.Equal(t, "firstName=Ada (ok)\nlastName=Lovelace (ok)\nallValid=true\n", res.out)
}

func TestCheck_MissingField(t *testing.T) {
	res := run(t, nil, "check", "--set", "firstName=Ada", "--output", "json")
	require.True(t, errors.Is(res.err, errIncomplete))

	var snap formstate.Snapshot
	require.NoError(t, json.Unmarshal([]byte(res.out), &snap))
	assert.False(t, snap.AllValid)
	assert.Equal(t, "Required field.", snap.Fields[formstate.LastName].ErrorMsg)
	assert.Contains(t, res.errOut, "form incomplete")
}

func TestCheck_Prefill(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "person.yaml")
	require.NoError(t, os.WriteFile(path, []byte("firstName: Ada\nlastName: Lovelace\n"), 0o644))

	res := run(t, nil, "check", "--prefill", path, "--output", "form")
	require.NoError(t, res.err)
	assert.Equal(t, "allValid=true&firstName=Ada&lastName=Lovelace\n", res.out)
}

func TestCheck_ConfigChains(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "formstate.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("chains:\n  lastName: none\n"), 0o644))

	res := run(t, nil, "--config", cfg, "check", "--set", "firstName=Ada")
	require.NoError(t, res.err)
	assert.True(t, strings.HasSuffix(res.out, "allValid=true\n"))
}

func TestCheck_BadInput(t *testing.T) {
	res := run(t, nil, "check", "--set", "email=ada@example.com")
	require.Error(t, res.err)
	assert.ErrorIs(t, res.err, formstate.ErrUnknownField)

	res = run(t, nil, "check", "--set", "firstName")
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "expected name=value")

	res = run(t, nil, "check", "--output", "xml")
	require.Error(t, res.err)
}

func TestFill(t *testing.T) {
	driver := &testsupport.StubDriver{Inputs: []string{"", "Ada", "Lovelace"}}
	res := run(t, driver, "fill", "--log-level", "debug", "--log-format", "json")
	require.NoError(t, res.err)

	assert.True(t, strings.HasSuffix(res.out, "allValid=true\n"))
	require.Len(t, driver.InfoMessages, 1)
	assert.Contains(t, driver.InfoMessages[0], "Required field.")
	assert.Contains(t, res.errOut, `"field evaluated"`)
}

func TestFill_MaxAttempts(t *testing.T) {
	driver := &testsupport.StubDriver{Inputs: []string{"", "Lovelace"}}
	res := run(t, driver, "fill", "--max-attempts", "1")
	assert.ErrorIs(t, res.err, errIncomplete)
}

func TestValidatorsCmd(t *testing.T) {
	res := run(t, nil, "validators")
	require.NoError(t, res.err)
	assert.Equal(t, "name, none, required\n", res.out)
}

func TestCheck_PrefillAndSetAgree(t *testing.T) {
	cases := map[string]struct {
		first, last string
	}{
		"markup and blanks": {first: "<script>x</script>", last: "   "},
		"clean names":       {first: "<b>Ada</b>", last: " Lovelace "},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "person.yaml")
			body := fmt.Sprintf("firstName: %q\nlastName: %q\n", tc.first, tc.last)
			require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

			fromFile := run(t, nil, "check", "--prefill", path)
			fromFlags := run(t, nil, "check", "--set", "firstName="+tc.first, "--set", "lastName="+tc.last)

			assert.Equal(t, fromFlags.out, fromFile.out)
			assert.Equal(t, errors.Is(fromFlags.err, errIncomplete), errors.Is(fromFile.err, errIncomplete))
		})
	}

	res := run(t, nil, "check", "--set", "firstName=<script>x</script>", "--set", "lastName=   ")
	assert.ErrorIs(t, res.err, errIncomplete)
	assert.Equal(t, "firstName= (Required field.)\nlastName= (Required field.)\nallValid=false\n", res.out)
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
