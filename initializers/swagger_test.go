package initializers

import (
	"os"
	"path/filepath"
	"recruitment-backend/config"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSwaggerConfig(t *testing.T) {
	config.Conf = &config.Configuration{}

	t.Run(`no generated docs`, func(t *testing.T) {
		config.Conf.App.SwaggerFile = filepath.Join(t.TempDir(), "swagger.json")
		_, ok := SwaggerConfig()
		require.False(t, ok)
	})

	t.Run(`generated docs`, func(t *testing.T) {
		filePath := filepath.Join(t.TempDir(), "swagger.json")
		require.Nil(t, os.WriteFile(filePath, []byte(`{"swagger":"2.0","info":{"title":"recruitment","version":"1.0"},"paths":{}}`), 0o644))
		config.Conf.App.SwaggerFile = filePath

		cfg, ok := SwaggerConfig()
		require.True(t, ok)
		require.Equal(t, "/swagger", cfg.Path)
		require.Equal(t, filePath, cfg.FilePath)
	})
}
