package scanner

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// TranscriptFile 表示一个转录结果文件
type TranscriptFile struct {
	Path      string    // 文件路径
	Name      string    // 文件名
	Size      int64     // 文件大小（字节）
	ModTime   time.Time // 修改时间
	Processed bool      // 是否已处理
}

// TranscriptScanner 用于扫描转录结果文件
type TranscriptScanner struct {
	Extensions []string
}

// NewTranscriptScanner 创建新的转录文件扫描器
func NewTranscriptScanner() *TranscriptScanner {
	return &TranscriptScanner{
		Extensions: []string{".json"},
	}
}

// ScanDirectory 扫描指定目录中的转录结果文件
func (s *TranscriptScanner) ScanDirectory(dir string) ([]TranscriptFile, error) {
	var transcriptFiles []TranscriptFile

	logrus.Infof("开始扫描目录: %s", dir)

	// 读取目录内容（非递归）
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		// 跳过目录和隐藏文件
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		// 获取文件信息
		info, err := entry.Info()
		if err != nil {
			logrus.Warnf("获取文件信息失败: %v", err)
			continue
		}

		path := filepath.Join(dir, entry.Name())
		if !s.isTranscriptFile(path) {
			continue
		}

		transcriptFiles = append(transcriptFiles, TranscriptFile{
			Path:      path,
			Name:      entry.Name(),
			Size:      info.Size(),
			ModTime:   info.ModTime(),
			Processed: false,
		})
	}

	logrus.Infof("扫描完成，共找到 %d 个转录文件", len(transcriptFiles))

	return transcriptFiles, nil
}

// FilterNewFiles 根据已处理记录过滤出新文件
func (s *TranscriptScanner) FilterNewFiles(files []TranscriptFile, processedPaths map[string]bool) []TranscriptFile {
	var newFiles []TranscriptFile

	for _, file := range files {
		if !processedPaths[file.Path] {
			newFiles = append(newFiles, file)
		}
	}

	logrus.Infof("过滤后剩余 %d 个新文件需要处理", len(newFiles))

	return newFiles
}

// isTranscriptFile 检查扩展名是否为转录文件
func (s *TranscriptScanner) isTranscriptFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, targetExt := range s.Extensions {
		if ext == targetExt {
			return true
		}
	}
	return false
}
