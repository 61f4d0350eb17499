//spellchecker:words cli
package cli_test

//spellchecker:words context flag http httptest path filepath testing github ieograph internal prompt serialize stretchr testify assert require
import (
	"context"
	"flag"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/FAU-CDI/ieograph/internal/cli"
	"github.com/FAU-CDI/ieograph/internal/prompt"
	"github.com/FAU-CDI/ieograph/internal/serialize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlags_Options(t *testing.T) {
	t.Parallel()

	registries := filepath.Join(t.TempDir(), "registries.toml")
	require.NoError(t, os.WriteFile(registries, []byte(`
[[registry]]
namespace = "http://example.com/EcoSpold02"
id = "0b3d5e06-4e0c-4d3c-9f3a-6a4d58f0a0c1"
label = "Example"
`), 0o644))

	var flags cli.Flags
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	flags.Register(set)
	require.NoError(t, set.Parse([]string{"-f", "nt", "-batch", "-registries", registries, "input.xml"}))

	assert.Equal(t, serialize.NTriples, flags.Format)
	assert.Equal(t, []string{"input.xml"}, set.Args())

	opts, err := flags.Options(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, opts.SQL)
	assert.Nil(t, opts.Cypher)
	require.NoError(t, opts.Close(context.Background()))
	assert.IsType(t, prompt.Batch{}, opts.Prompter)

	id, err := opts.Resolver.MasterData("http://example.com/EcoSpold02", "1", "0")
	require.NoError(t, err)
	assert.Equal(t, "Examplev1.0", id.DatabaseLabel())
}

func TestFlags_InvalidFormat(t *testing.T) {
	t.Parallel()

	var flags cli.Flags
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	set.SetOutput(io.Discard)
	flags.Register(set)

	assert.Error(t, set.Parse([]string{"-format", "turtle"}))
}

func TestDebugRouter(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(cli.DebugRouter())
	defer server.Close()

	res, err := http.Get(server.URL + "/debug/pprof/")
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)
}
