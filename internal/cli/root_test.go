package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"akeneo/endpoints/internal/cli"
	"akeneo/endpoints/internal/domain"
	"akeneo/endpoints/internal/endpoint"
)

func run(t *testing.T, configDir string, args ...string) (string, error) {
	t.Helper()

	tc := cli.NewRootCmd("endpoints")
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	tc.SetArgs(append([]string{"--config", configDir, "--log-level", "error"}, args...))
	tc.SetOut(stdout)
	tc.SetErr(stderr)

	err := tc.Execute()
	return stdout.String(), err
}

func TestCommands(t *testing.T) {
	tests := map[string]struct {
		args []string
		want string
	}{
		"type": {
			args: []string{"type", "family"},
			want: "families\n",
		},
		"type attribute option": {
			args: []string{"type", "attribute_option", "--parent", "shoe_size"},
			want: "attributes/shoe_size/options\n",
		},
		"instance product": {
			args: []string{"instance", "product", "SKU123"},
			want: "products/SKU123\n",
		},
		"instance attribute option": {
			args: []string{"instance", "attribute-option", "color", "red"},
			want: "attributes/color/option/red\n",
		},
		"format category": {
			args: []string{"format", "category", "winter"},
			want: "categories/winter\n",
		},
		"paginate": {
			args: []string{"paginate", "family", "--page", "2", "--limit", "25", "--with-count"},
			want: "families?page=2&limit=25&with_count=true\n",
		},
		"paginate with configured defaults": {
			args: []string{"paginate", "product"},
			want: "products?page=1&limit=10&with_count=false\n",
		},
		"paginate with parent": {
			args: []string{"paginate", "attribute_option", "--parent", "color"},
			want: "attributes//options?page=1&limit=10&with_count=false\n",
		},
		"request": {
			args: []string{"request", "patch", "product", "SKU123"},
			want: "PATCH http://localhost:8080/api/rest/v1/products/SKU123\n",
		},
		"request collection": {
			args: []string{"request", "get", "family"},
			want: "GET http://localhost:8080/api/rest/v1/families\n",
		},
		"request page": {
			args: []string{"request", "get", "family", "--page", "2", "--limit", "25", "--with-count"},
			want: "GET http://localhost:8080/api/rest/v1/families?page=2&limit=25&with_count=true\n",
		},
		"request option collection": {
			args: []string{"request", "get", "attribute_option", "--parent", "color"},
			want: "GET http://localhost:8080/api/rest/v1/attributes/color/options\n",
		},
		"request option page": {
			args: []string{"request", "get", "attribute_option", "--parent", "color", "--page", "3"},
			want: "GET http://localhost:8080/api/rest/v1/attributes/color/options?limit=10&page=3&with_count=false\n",
		},
		"request option instance": {
			args: []string{"request", "delete", "attribute_option", "color", "red"},
			want: "DELETE http://localhost:8080/api/rest/v1/attributes/color/option/red\n",
		},
		"format url": {
			args: []string{"format", "category", "winter", "--url"},
			want: "http://localhost:8080/api/rest/v1/categories/winter\n",
		},
		"list": {
			args: []string{"list", "--parent", "color"},
			want: "product\tproducts\n" +
				"attribute\tattributes\n" +
				"attribute_option\tattributes/color/options\n" +
				"family\tfamilies\n" +
				"category\tcategories\n",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := run(t, t.TempDir(), tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCommandErrors(t *testing.T) {
	tests := map[string]struct {
		args    []string
		wantErr error
	}{
		"unknown resource type": {
			args:    []string{"type", "channel"},
			wantErr: domain.ErrUnknownResourceType,
		},
		"format mismatch": {
			args:    []string{"format", "attribute_option", "color"},
			wantErr: endpoint.ErrFormatMismatch,
		},
		"instance with missing option code": {
			args:    []string{"instance", "attribute_option", "color"},
			wantErr: cli.ErrInvalidArgument,
		},
		"request option collection without parent": {
			args:    []string{"request", "get", "attribute_option"},
			wantErr: cli.ErrInvalidArgument,
		},
		"request write on collection": {
			args:    []string{"request", "post", "family"},
			wantErr: cli.ErrInvalidArgument,
		},
		"request with wrong code count": {
			args:    []string{"request", "get", "attribute_option", "color"},
			wantErr: cli.ErrInvalidArgument,
		},
		"zero page": {
			args:    []string{"paginate", "family", "--page", "0"},
			wantErr: cli.ErrInvalidArgument,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := run(t, t.TempDir(), tc.args...)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestConfiguredEndpoints(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(`
akeneo:
  base_url: https://pim.example.com/api/rest/v1
  page_limit: 100
  endpoints:
    categories: catalog/categories
`), 0o600)
	require.NoError(t, err)

	got, err := run(t, dir, "format", "category", "winter")
	require.NoError(t, err)
	assert.Equal(t, "catalog/categories/winter\n", got)

	got, err = run(t, dir, "paginate", "category")
	require.NoError(t, err)
	assert.Equal(t, "catalog/categories?page=1&limit=100&with_count=false\n", got)

	got, err = run(t, dir, "request", "get", "category", "winter")
	require.NoError(t, err)
	assert.Equal(t, "GET https://pim.example.com/api/rest/v1/catalog/categories/winter\n", got)
}

func TestWorkingDirectoryConfig(t *testing.T) {
	// Without --config, config.yaml is looked up in the working directory,
	// which for this package has none.
	tc := cli.NewRootCmd("endpoints")
	stdout := &bytes.Buffer{}

	tc.SetArgs([]string{"--log-level", "error", "type", "category"})
	tc.SetOut(stdout)
	tc.SetErr(&bytes.Buffer{})

	require.NoError(t, tc.Execute())
	assert.Equal(t, "categories\n", stdout.String())
}

func TestMalformedConfigFails(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("akeneo: [unclosed"), 0o600)
	require.NoError(t, err)

	_, err = run(t, dir, "type", "category")
	require.Error(t, err)
}
