package tracing

// A TaskStep represents a milestone in the processing of task
type TaskStep struct {
	Time uint64 `json:"time"`
	What string `json:"what"`
}

// A Task is a task
type Task struct {
	ID         string      `json:"id"`
	ParentID   string      `json:"parent_id"`
	Kind       string      `json:"kind"`
	What       string      `json:"what"`
	Where      string      `json:"where"`
	StartTime  uint64      `json:"start_time"`
	EndTime    uint64      `json:"end_time"`
	Steps      []TaskStep  `json:"steps"`
	Detail     interface{} `json:"-"`
	ParentTask *Task       `json:"-"`
}
