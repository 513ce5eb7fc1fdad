package engine

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ivlev/camtrack/internal/config"
	"github.com/ivlev/camtrack/internal/easing"
	"github.com/ivlev/camtrack/internal/level"
	"github.com/ivlev/camtrack/internal/preview"
	"github.com/ivlev/camtrack/internal/scenario"
	"github.com/ivlev/camtrack/internal/system"
	"github.com/ivlev/camtrack/internal/track"
)

type Project struct {
	Config *config.Config
}

func NewProject(cfg *config.Config) *Project {
	return &Project{Config: cfg}
}

func (p *Project) Run() error {
	startTime := time.Now()

	lvl, err := level.Load(p.Config.InputPath)
	if err != nil {
		return fmt.Errorf("ошибка загрузки уровня: %w", err)
	}
	tbl, err := lvl.TimingTable()
	if err != nil {
		return fmt.Errorf("ошибка расчета тайминга: %w", err)
	}

	tr := TrackFromLevel(lvl, tbl)
	fmt.Printf("[*] Уровень: %s | Тайлов: %d | Камера-кадров: %d\n",
		p.Config.InputPath, tbl.Len(), tr.Len())

	if p.Config.ScenarioOutput != "" {
		if err := scenario.Write(scenario.FromTrack(tr), p.Config.ScenarioOutput); err != nil {
			return fmt.Errorf("ошибка сохранения сценария: %w", err)
		}
		fmt.Printf("[*] Сценарий сохранен: %s\n", p.Config.ScenarioOutput)
	}

	if p.Config.ScenarioInput != "" {
		s, err := scenario.Read(p.Config.ScenarioInput)
		if err != nil {
			return fmt.Errorf("ошибка чтения сценария: %w", err)
		}
		tr = s.Track()
		fmt.Printf("[*] Используется сценарий: %s (%d кадров)\n", p.Config.ScenarioInput, tr.Len())
	}

	// Кривые семплов всегда пересобираются перед сохранением, кэш из
	// входного файла может быть устаревшим.
	sampleN := p.Config.SampleCount
	if sampleN < 2 {
		sampleN = easing.PersistSamples
	}
	p.resample(tr, sampleN)

	if p.Config.PreviewPath != "" {
		if tr.Len() == 0 {
			fmt.Println("[!] Пустой трек, превью пропущено")
		} else if err := p.writePreview(tr); err != nil {
			fmt.Printf("[!] Не удалось построить превью: %v\n", err)
		} else {
			fmt.Printf("[*] Превью: %s\n", p.Config.PreviewPath)
		}
	}

	if p.Config.OutputPath != "" {
		events := EventsFromTrack(tr, tbl, sampleN)
		if err := lvl.ReplaceCameraEvents(events); err != nil {
			return fmt.Errorf("ошибка сборки событий: %w", err)
		}
		if err := lvl.Write(p.Config.OutputPath); err != nil {
			return fmt.Errorf("ошибка записи уровня: %w", err)
		}
		fmt.Printf("[+] Уровень сохранен: %s (%d камера-событий)\n", p.Config.OutputPath, len(events))
	}

	if p.Config.ShowStats {
		p.printStats(startTime, tr)
	}
	return nil
}

// resample параллельно пересчитывает кэш семплов всех кадров.
func (p *Project) resample(tr *track.Track, n int) {
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for _, k := range tr.Keyframes() {
		k := k
		g.Go(func() error {
			k.ResampleCache(n)
			return nil
		})
	}
	g.Wait()
}

func (p *Project) writePreview(tr *track.Track) error {
	w, h := p.Config.PreviewWidth, p.Config.PreviewHeight
	if w == 0 {
		w = 1280
	}
	if h == 0 {
		h = 720
	}
	img, err := preview.RenderTrack(tr, w, h)
	if err != nil {
		return err
	}
	return preview.WritePNG(img, p.Config.PreviewPath)
}

func (p *Project) printStats(startTime time.Time, tr *track.Track) {
	totalTime := time.Since(startTime)

	stats, err := system.ProcessStats()
	if err != nil {
		fmt.Printf("[!] Не удалось собрать статистику процесса: %v\n", err)
	}

	report := fmt.Sprintf(
		"--- [PERFORMANCE REPORT] ---\n"+
			"Build: %s\n"+
			"Total Time: %.3fs\n"+
			"Keyframes: %d\n"+
			"RSS: %.1f MB\n"+
			"Logical CPUs: %d\n"+
			"----------------------------\n",
		p.Config.BuildVersion, totalTime.Seconds(), tr.Len(), stats.RSSMegabytes, stats.LogicalCPUs,
	)
	fmt.Print(report)

	logEntry := fmt.Sprintf("[%s] Build: %s | Input: %s | Keyframes: %d | Total: %.3fs | RSS: %.1fMB\n",
		time.Now().Format("2006-01-02 15:04:05"),
		p.Config.BuildVersion,
		p.Config.InputPath,
		tr.Len(),
		totalTime.Seconds(),
		stats.RSSMegabytes,
	)

	f, err := os.OpenFile("benchmark.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err == nil {
		f.WriteString(logEntry)
		f.Close()
	} else {
		fmt.Printf("[!] Не удалось записать benchmark.log: %v\n", err)
	}
}
