package rules

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeYAML(t *testing.T) {
	doc := `
categoryBuckets:
  - match: 通識
    bucket: general
pe:
  keywords: [體育]
  requiredCredits: 4
graduationTotalMin: 128
reassignment:
  enabled: true
  category: 學系專業課程
  subdomainA: A
  subdomainB: B
  threshold: 24
  overflow: 系專業選修
  positiveOnly: true
  tieBreak: b
`
	cfg, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, []Bucket{{Match: "通識", Bucket: "general"}}, cfg.CategoryBuckets)
	assert.Equal(t, []string{"體育"}, cfg.PE.Keywords)
	assert.Equal(t, 4.0, cfg.PE.RequiredCredits)
	assert.Equal(t, 128.0, cfg.GraduationTotalMin)
	assert.True(t, cfg.Reassignment.Enabled)
	assert.Equal(t, 24.0, cfg.Reassignment.Threshold)
	assert.Equal(t, TieBreakB, cfg.Reassignment.TieBreak)
}

func TestDecodeJSON(t *testing.T) {
	doc := `{"categoryBuckets":[{"match":"學系專業","bucket":"major"}],"service":{"keywords":["服務學習"],"requiredTimes":2}}`

	cfg, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, "major", cfg.Bucket("學系專業課程"))
	assert.Equal(t, 2, cfg.Service.RequiredTimes)
}

func TestDecodeEmpty(t *testing.T) {
	cfg, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, cfg.CategoryBuckets)
	assert.False(t, cfg.Reassignment.Enabled)
}

func TestDecodeInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"malformed", "categoryBuckets: [\n"},
		{"missing bucket", "categoryBuckets:\n  - match: 通識\n"},
		{"negative requirement", "pe:\n  requiredCredits: -1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("requiredMin: 60\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 60.0, cfg.RequiredMin)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadIfExists(t *testing.T) {
	cfg, err := LoadIfExists(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Nil(t, cfg)

	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("requiredMin: 60\n"), 0o644))
	cfg, err = LoadIfExists(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, 60.0, cfg.RequiredMin)

	path = filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("requiredMin: [\n"), 0o644))
	_, err = LoadIfExists(path)
	assert.Error(t, err)
}

func TestLoadShippedRules(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "..", "configs", "rules.yaml"))
	require.NoError(t, err)

	assert.Len(t, cfg.CategoryBuckets, 5)
	assert.NoError(t, cfg.Reassignment.validate())
	assert.Equal(t, 24.0, cfg.Reassignment.Threshold)
}
