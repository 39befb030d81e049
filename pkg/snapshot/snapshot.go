package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

// Dir is the directory snapshots are read from and written to, relative to the package under test
const Dir = "testdata"

// UpdateEnv names the environment variable that allows missing snapshots to be written
const UpdateEnv = "UPDATE_SNAPSHOTS"

var (
	mu        sync.Mutex
	funcCount = make(map[string]int)
)

// tb is the part of testing.TB a snapshot needs
type tb interface {
	Helper()
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
	Logf(format string, args ...interface{})
}

// ValidateSnapshot compares obj, encoded as indented JSON, to the snapshot file for the calling test
// Each call within the same test function gets its own file. A missing file fails the test unless
// UPDATE_SNAPSHOTS is set, in which case it is created from obj.
func ValidateSnapshot(t *testing.T, obj interface{}, depth int, msgAndArgs ...interface{}) {
	t.Helper()

	validate(t, nextFilename(1+depth), obj, msgAndArgs...)
}

func validate(t tb, filename string, obj interface{}, msgAndArgs ...interface{}) {
	t.Helper()

	expects, err := os.ReadFile(filename)
	if err != nil {
		if !os.IsNotExist(err) {
			panic(err)
		}

		if os.Getenv(UpdateEnv) == "" {
			t.Fatalf("snapshot %s is missing, run with %s=1 to create it", filename, UpdateEnv)
			return
		}

		create(filename, obj)
		return
	}

	objJSON, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		panic(err)
	}

	if !assert.Equal(t, strings.Trim(string(expects), "\n"), strings.Trim(string(objJSON), "\n"), msgAndArgs...) {
		t.Logf("snapshot %s", filename)
	}
}

func nextFilename(skip int) string {
	pc, _, _, _ := runtime.Caller(skip + 1)
	funcName := filepath.Base(runtime.FuncForPC(pc).Name())

	mu.Lock()
	call := funcCount[funcName]
	funcCount[funcName] = call + 1
	mu.Unlock()

	return filepath.Join(Dir, fmt.Sprintf("%s-%d.json", funcName, call))
}

func create(filename string, obj interface{}) {
	logrus.WithField("filename", filename).Info("writing snapshot file")

	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		panic(err)
	}

	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		panic(err)
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(obj); err != nil {
		panic(err)
	}
}
