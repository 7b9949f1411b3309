package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

// 创建测试目录结构
func setupTestDir(t *testing.T) string {
	dir := t.TempDir()

	files := []string{"a.json", "b.JSON", "notes.txt", ".hidden.json"}
	for _, name := range files {
		err := os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0644)
		assert.NoError(t, err)
	}

	// 子目录不参与扫描
	err := os.Mkdir(filepath.Join(dir, "sub"), 0755)
	assert.NoError(t, err)
	err = os.WriteFile(filepath.Join(dir, "sub", "c.json"), []byte("{}"), 0644)
	assert.NoError(t, err)

	return dir
}

func TestScanDirectory(t *testing.T) {
	dir := setupTestDir(t)
	s := NewTranscriptScanner()

	files, err := s.ScanDirectory(dir)

	assert.NoError(t, err)
	// 扩展名匹配不区分大小写，隐藏文件、子目录和其它扩展名被跳过
	assert.Len(t, files, 2)

	names := []string{files[0].Name, files[1].Name}
	assert.Contains(t, names, "a.json")
	assert.Contains(t, names, "b.JSON")
}

func TestScanDirectoryNotExist(t *testing.T) {
	s := NewTranscriptScanner()
	_, err := s.ScanDirectory("./no_such_dir")
	assert.Error(t, err)
}

func TestFilterNewFiles(t *testing.T) {
	s := NewTranscriptScanner()
	files := []TranscriptFile{
		{Path: "/x/a.json", Name: "a.json"},
		{Path: "/x/b.json", Name: "b.json"},
	}

	newFiles := s.FilterNewFiles(files, map[string]bool{"/x/a.json": true})

	assert.Len(t, newFiles, 1)
	assert.Equal(t, "b.json", newFiles[0].Name)
}

func TestIsTranscriptFile(t *testing.T) {
	s := NewTranscriptScanner()

	assert.True(t, s.isTranscriptFile("data.json"))
	assert.True(t, s.isTranscriptFile("DATA.JSON"))
	assert.False(t, s.isTranscriptFile("data.txt"))
	assert.False(t, s.isTranscriptFile("data"))
}
