package tui_test

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formstate/pkg/formstate"
	"github.com/goliatone/go-formstate/pkg/sanitize"
	"github.com/goliatone/go-formstate/pkg/testsupport"
	"github.com/goliatone/go-formstate/pkg/tui"
	"github.com/goliatone/go-formstate/pkg/validators"
)

func TestCollect_AllValid(t *testing.T) {
	driver := &testsupport.StubDriver{Inputs: []string{"Ada", "Lovelace"}}
	store := formstate.NewPersonForm()

	r := tui.New(tui.WithPromptDriver(driver), tui.WithLabels(map[formstate.FieldName]string{
		formstate.FirstName: "First name",
	}))
	require.NoError(t, r.Collect(testsupport.Context(), store))

	assert.True(t, store.IsAllValid())
	assert.Equal(t, []string{"First name", "lastName"}, driver.Prompts)
	assert.Empty(t, driver.InfoMessages)
}

func TestCollect_RepromptsUntilValid(t *testing.T) {
	driver := &testsupport.StubDriver{Inputs: []string{"", "   ", "Ada", "Lovelace"}}
	store := formstate.NewPersonForm()

	r := tui.New(tui.WithPromptDriver(driver), tui.WithTheme(tui.Theme{ErrorPrefix: "! "}))
	require.NoError(t, r.Collect(testsupport.Context(), store))

	inputs, _ := driver.Consumed()
	assert.Equal(t, 4, inputs)
	assert.True(t, store.IsAllValid())
	require.Len(t, driver.InfoMessages, 2)
	assert.Equal(t, "! Invalid firstName: Required field.", driver.InfoMessages[0])
}

func TestCollect_MaxAttemptsLeavesFieldInvalid(t *testing.T) {
	driver := &testsupport.StubDriver{Inputs: []string{"", "", "Lovelace"}}
	store := formstate.NewPersonForm()

	r := tui.New(tui.WithPromptDriver(driver), tui.WithMaxAttempts(2))
	require.NoError(t, r.Collect(testsupport.Context(), store))

	assert.False(t, store.IsAllValid())
	assert.Equal(t, map[formstate.FieldName]string{formstate.FirstName: validators.RequiredMessage}, store.Errors())

	last, ok := store.Field(formstate.LastName)
	require.True(t, ok)
	assert.True(t, last.IsValid())
}

func TestCollect_SanitizesInput(t *testing.T) {
	driver := &testsupport.StubDriver{Inputs: []string{"<b>Ada</b>", "<script>x</script>", "Lovelace"}}
	store := formstate.NewPersonForm()

	r := tui.New(tui.WithPromptDriver(driver))
	require.NoError(t, r.Collect(testsupport.Context(), store))

	assert.Equal(t, map[string]any{"firstName": "Ada", "lastName": "Lovelace"}, store.Values())
	assert.Len(t, driver.InfoMessages, 1)
}

func TestCollect_CustomSanitizerAndChains(t *testing.T) {
	driver := &testsupport.StubDriver{Inputs: []string{"  ", ""}}
	store := formstate.NewPersonForm()

	r := tui.New(
		tui.WithPromptDriver(driver),
		tui.WithSanitizer(sanitize.Identity),
		tui.WithChains(map[formstate.FieldName]validators.Chain{formstate.LastName: {}}),
	)
	require.NoError(t, r.Collect(testsupport.Context(), store))

	assert.True(t, store.IsAllValid(), "whitespace keeps its length and lastName has no validators")
}

func TestCollect_OffersCurrentValueAsDefault(t *testing.T) {
	driver := &testsupport.StubDriver{Inputs: []string{"Ada", "Byron"}}
	store := formstate.NewPersonForm()
	require.NoError(t, store.SetValue(formstate.LastName, "Lovelace"))

	r := tui.New(tui.WithPromptDriver(driver))
	require.NoError(t, r.Collect(testsupport.Context(), store))

	assert.Equal(t, []string{"", "Lovelace"}, driver.Defaults)
}

func TestCollect_BooleanFieldUsesConfirm(t *testing.T) {
	store := formstate.New("terms")
	require.NoError(t, store.SetValue("terms", false))
	driver := &testsupport.StubDriver{Confirms: []bool{false, true}}

	r := tui.New(tui.WithPromptDriver(driver), tui.WithDefaultChain(validators.Chain{validators.Required}))
	require.NoError(t, r.Collect(testsupport.Context(), store))

	_, confirms := driver.Consumed()
	assert.Equal(t, 2, confirms)
	assert.True(t, store.IsAllValid())
}

func TestCollect_PropagatesDriverErrors(t *testing.T) {
	driver := &testsupport.StubDriver{}
	r := tui.New(tui.WithPromptDriver(driver))

	err := r.Collect(testsupport.Context(), formstate.NewPersonForm())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no input scripted")
}

func TestCollect_Preconditions(t *testing.T) {
	r := tui.New(tui.WithPromptDriver(&testsupport.StubDriver{}))

	assert.True(t, errors.Is(r.Collect(testsupport.Context(), nil), tui.ErrNilStore))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, r.Collect(ctx, formstate.NewPersonForm()), context.Canceled)
}

func TestRender_JSON(t *testing.T) {
	driver := &testsupport.StubDriver{Inputs: []string{"Ada", "Lovelace"}}
	r := tui.New(tui.WithPromptDriver(driver))
	assert.Equal(t, "application/json", r.ContentType())

	out, err := r.Render(testsupport.Context(), formstate.NewPersonForm())
	require.NoError(t, err)

	var snap formstate.Snapshot
	require.NoError(t, json.Unmarshal(out, &snap))
	assert.True(t, snap.AllValid)
	assert.Equal(t, "Ada", snap.Fields[formstate.FirstName].Value)
}

func TestSerialize_YAML(t *testing.T) {
	store := formstate.NewPersonForm()
	require.NoError(t, store.SetValue(formstate.FirstName, "Ada"))

	r := tui.New(tui.WithOutputFormat(tui.OutputFormatYAML))
	assert.Equal(t, "application/yaml", r.ContentType())

	out, err := r.Serialize(store)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Equal(t, false, decoded["allValid"])
}

func TestSerialize_Form(t *testing.T) {
	store := formstate.NewPersonForm()
	require.NoError(t, store.SetValue(formstate.FirstName, "Ada Byron"))

	r := tui.New(tui.WithOutputFormat(tui.OutputFormatFormURLEncoded))
	out, err := r.Serialize(store)
	require.NoError(t, err)
	assert.Equal(t, "allValid=false&firstName=Ada+Byron&lastName=", string(out))
}

func TestSerialize_PrettyGolden(t *testing.T) {
	store := formstate.NewPersonForm()
	require.NoError(t, store.SetValue(formstate.FirstName, "Ada"))
	_, err := store.ValidateAll(nil, validators.Name)
	require.NoError(t, err)

	r := tui.New(tui.WithOutputFormat(tui.OutputFormatPrettyText))
	out, err := r.Serialize(store)
	require.NoError(t, err)

	path := filepath.Join("testdata", "pretty.golden")
	if testsupport.WriteMaybeGolden(t, path, out) {
		return
	}
	want := string(testsupport.MustReadGolden(t, path))
	if diff := testsupport.CompareGolden(want, string(out)); diff != "" {
		t.Fatalf("pretty output mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, strings.HasSuffix(string(out), "allValid=false\n"))
}

func TestParseOutputFormat(t *testing.T) {
	for _, raw := range []string{"json", "form", "pretty", "yaml"} {
		format, ok := tui.ParseOutputFormat(raw)
		assert.True(t, ok, raw)
		assert.Equal(t, tui.OutputFormat(raw), format)
	}
	_, ok := tui.ParseOutputFormat("xml")
	assert.False(t, ok)
}
