package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

var (
	callCount = make(map[string]int)
	countLock sync.Mutex
)

// ValidateSnapshot compares obj, as indented JSON, against testdata/<test name>-<call>.json
// The file is written when it does not exist yet.
func ValidateSnapshot(t *testing.T, obj interface{}, msgAndArgs ...interface{}) bool {
	t.Helper()

	filename := filepath.Join("testdata", snapshotName(t))

	objJSON, err := json.MarshalIndent(obj, "", "  ")
	if !assert.NoError(t, err) {
		return false
	}

	expects, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return assert.NoError(t, create(filename, objJSON))
		}

		return assert.NoError(t, err)
	}

	if !assert.Equal(t, strings.Trim(string(expects), "\n"), strings.Trim(string(objJSON), "\n"), msgAndArgs...) {
		t.Logf("snapshot %s", filename)
		return false
	}

	return true
}

func snapshotName(t *testing.T) string {
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())

	countLock.Lock()
	defer countLock.Unlock()

	call := callCount[name]
	callCount[name] = call + 1

	return fmt.Sprintf("%s-%d.json", name, call)
}

func create(filename string, objJSON []byte) error {
	logrus.WithField("filename", filename).Info("writing snapshot file")
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return err
	}

	return os.WriteFile(filename, append(objJSON, '\n'), 0644)
}
