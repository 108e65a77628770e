package db

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"sync"

	"modernc.org/sqlite"
)

// FoldFunc is the SQLite scalar function that lower-cases text with Unicode
// rules. The built-in LOWER only folds ASCII letters.
const FoldFunc = "fold"

var (
	registerFoldOnce sync.Once
	registerFoldErr  error
)

// registerFold makes fold(x) available on every SQLite connection opened afterwards.
func registerFold() error {
	registerFoldOnce.Do(func() {
		registerFoldErr = sqlite.RegisterDeterministicScalarFunction(FoldFunc, 1, fold)
	})
	return registerFoldErr
}

func fold(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case nil:
		return nil, nil
	case string:
		return strings.ToLower(v), nil
	case []byte:
		return strings.ToLower(string(v)), nil
	default:
		return strings.ToLower(fmt.Sprint(v)), nil
	}
}
