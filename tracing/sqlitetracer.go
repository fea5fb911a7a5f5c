package tracing

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/xid"
	"github.com/tebeka/atexit"
)

// SQLiteTracer persists tasks into a SQLite database instead of a JSON file,
// for runs where the trace needs to be queried rather than just archived.
type SQLiteTracer struct {
	db            *sql.DB
	lock          sync.Mutex
	inflightTasks map[string]Task
}

// NewSQLiteTracer creates a SQLiteTracer backed by the database at path. An
// empty path generates a name the way NewJSONTracer generates a filename.
func NewSQLiteTracer(path string) *SQLiteTracer {
	if path == "" {
		path = xid.New().String() + ".sqlite3"
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		panic(err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS tasks (
			id TEXT PRIMARY KEY,
			parent_id TEXT,
			kind TEXT,
			what TEXT,
			where_ TEXT,
			start_time INTEGER,
			end_time INTEGER,
			steps TEXT
		)
	`)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Recording tasks in %s\n", path)

	t := &SQLiteTracer{
		db:            db,
		inflightTasks: make(map[string]Task),
	}

	atexit.Register(t.finish)

	return t
}

// StartTask records the start of a task.
func (t *SQLiteTracer) StartTask(task Task) {
	t.lock.Lock()
	defer t.lock.Unlock()

	t.inflightTasks[task.ID] = task
}

// StepTask records the moment a task reaches a milestone.
func (t *SQLiteTracer) StepTask(task Task) {
	t.lock.Lock()
	defer t.lock.Unlock()

	original, ok := t.inflightTasks[task.ID]
	if !ok {
		return
	}

	if len(task.Steps) > 0 {
		original.Steps = append(original.Steps, task.Steps[len(task.Steps)-1])
		t.inflightTasks[task.ID] = original
	}
}

// EndTask records the time a task completed and flushes it to the database.
func (t *SQLiteTracer) EndTask(task Task) {
	t.lock.Lock()

	original, ok := t.inflightTasks[task.ID]
	if !ok {
		t.lock.Unlock()
		return
	}
	original.EndTime = task.EndTime
	delete(t.inflightTasks, task.ID)

	t.lock.Unlock()

	steps, err := json.Marshal(original.Steps)
	if err != nil {
		panic(err)
	}

	_, err = t.db.Exec(
		`INSERT INTO tasks (id, parent_id, kind, what, where_, start_time, end_time, steps)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		original.ID, original.ParentID, original.Kind, original.What, original.Where,
		original.StartTime, original.EndTime, string(steps),
	)
	if err != nil {
		panic(err)
	}
}

func (t *SQLiteTracer) finish() {
	if err := t.db.Close(); err != nil {
		panic(err)
	}
}
