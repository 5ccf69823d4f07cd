package hamanand

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parsatext/hamanand/check"
	"github.com/parsatext/hamanand/core"
)

func TestNew(t *testing.T) {
	t.Run("create new app", func(t *testing.T) {
		tmpDir := filepath.Join(t.TempDir(), "corpus_db")
		app, err := New(tmpDir)
		require.NoError(t, err)
		require.NotNil(t, app)
		defer app.Close()

		assert.NotNil(t, app.SentenceRepository())
		assert.NotNil(t, app.WikipediaClient())
		assert.NotNil(t, app.backend)
		assert.NotNil(t, app.logger)
	})

	t.Run("error with invalid path", func(t *testing.T) {
		// A regular file where the store directory should be.
		tmpFile := filepath.Join(t.TempDir(), "not_a_dir")
		err := os.WriteFile(tmpFile, []byte("test"), 0644)
		require.NoError(t, err)

		app, err := New(tmpFile)
		assert.Error(t, err)
		assert.Nil(t, app)
	})
}

func TestApp_Close(t *testing.T) {
	app, err := New("", WithInMemoryStorage())
	require.NoError(t, err)
	require.NotNil(t, app)

	err = app.Close()
	assert.NoError(t, err)
}

func TestApp_FactoryMethods(t *testing.T) {
	app, err := New("", WithInMemoryStorage())
	require.NoError(t, err)
	defer app.Close()

	t.Run("can create checker", func(t *testing.T) {
		checker, err := app.NewChecker()
		require.NoError(t, err)
		require.NotNil(t, checker)
	})

	t.Run("can create ingestion pipeline", func(t *testing.T) {
		pipeline, err := app.NewIngestionPipeline()
		require.NoError(t, err)
		require.NotNil(t, pipeline)
		pipeline.Release()
	})
}

func TestApp_EndToEndLocalCheck(t *testing.T) {
	app, err := New("", WithInMemoryStorage())
	require.NoError(t, err)
	defer app.Close()

	text := "سرقت ادبی یعنی استفاده از متن دیگران بدون ذکر منبع"
	err = app.SentenceRepository().Upsert(context.Background(), &core.SentenceRecord{
		Id:        core.IDFromContent(text),
		Text:      text,
		CreatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)

	checker, err := app.NewChecker()
	require.NoError(t, err)

	result, err := checker.Check(context.Background(), text,
		check.Options{UseOpenSources: false})
	require.NoError(t, err)

	require.NotNil(t, result.BestHit)
	assert.Equal(t, core.SourceInternal, result.BestHit.Source)
	assert.InDelta(t, 100.0, result.SimilarityPercent, 0.001)
}
