package system

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/process"
)

// FindLatestLevel возвращает путь к самому свежему .adofai файлу в папке.
func FindLatestLevel(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	var latest string
	var latestMod time.Time
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".adofai") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if latest == "" || info.ModTime().After(latestMod) {
			latest = filepath.Join(dir, e.Name())
			latestMod = info.ModTime()
		}
	}
	if latest == "" {
		return "", fmt.Errorf("в папке %s не найдено .adofai файлов", dir)
	}

	return latest, nil
}

type Stats struct {
	RSSMegabytes float64
	LogicalCPUs  int
}

// ProcessStats собирает статистику текущего процесса для отчета -stats.
func ProcessStats() (Stats, error) {
	var s Stats

	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return s, err
	}
	mem, err := proc.MemoryInfo()
	if err != nil {
		return s, err
	}
	s.RSSMegabytes = float64(mem.RSS) / (1024 * 1024)

	if n, err := cpu.Counts(true); err == nil {
		s.LogicalCPUs = n
	}

	return s, nil
}
