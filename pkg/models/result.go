package models

// Result 单个转录文件的处理结果统计
type Result struct {
	TaskID        string            `json:"task_id"`         // 本次处理的任务ID
	FilePath      string            `json:"file_path"`       // 处理的转录文件路径
	OutputFiles   map[string]string `json:"output_files"`    // 输出文件路径
	SegmentCount  int               `json:"segment_count"`   // 切分出的句子数
	MinuteCount   int               `json:"minute_count"`    // 分钟分组数
	SpeakerCount  int               `json:"speaker_count"`   // 识别出的说话人数
	DurationMs    int               `json:"duration_ms"`     // 转录内容时长（毫秒）
	ProcessTimeMs int64             `json:"process_time_ms"` // 处理时间（毫秒）
}
