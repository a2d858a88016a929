package report

import (
	"fmt"
	"path/filepath"
	"time"
)

// JST is a fixed UTC+9 offset. The run date stamped into filenames and
// titles must not depend on the host timezone.
var JST = time.FixedZone("JST", 9*60*60)

// RunDate formats now as the YYYY-MM-DD date stamp in fixed UTC+9.
func RunDate(now time.Time) string {
	return now.In(JST).Format("2006-01-02")
}

// OutputPath returns dir/<prefix>_<date>.pdf for the given run time.
func OutputPath(dir, prefix string, now time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("%s_%s.pdf", prefix, RunDate(now)))
}

// DocumentTitle returns the weekly pickup heading for a category.
func DocumentTitle(category string, now time.Time) string {
	return fmt.Sprintf("%s 週次ピックアップ（%s）", category, RunDate(now))
}
