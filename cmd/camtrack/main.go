package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ivlev/camtrack/internal/config"
	"github.com/ivlev/camtrack/internal/easing"
	"github.com/ivlev/camtrack/internal/engine"
	"github.com/ivlev/camtrack/internal/system"
)

var buildVersion = "dev"

func main() {
	// Создаем нужные директории, если их нет
	dirs := []string{"input/levels", "output"}
	for _, d := range dirs {
		os.MkdirAll(d, 0755)
	}

	inputPtr := flag.String("input", "", "Путь к .adofai уровню (по умолчанию: самый свежий файл в input/levels/)")
	outputPtr := flag.String("output", "", "Путь к результату (если пусто, генерируется автоматически в output/)")
	scenarioPtr := flag.String("scenario", "", "YAML-сценарий камеры для применения к уровню")
	exportScenarioPtr := flag.String("export-scenario", "", "Выгрузить текущие камера-кадры уровня в YAML-сценарий")
	previewPtr := flag.String("preview", "", "Путь к PNG-превью кривых камеры (пусто - без превью)")
	previewSizePtr := flag.String("preview-size", "1280x720", "Размер превью, ШxВ")
	samplesPtr := flag.Int("samples", easing.PersistSamples, "Разрешение кривых семплов при сохранении")
	watchPtr := flag.Bool("watch", false, "Следить за входным файлом и пересобирать при изменении")
	statsPtr := flag.Bool("stats", false, "Печатать отчет о производительности")

	flag.Parse()

	inputPath := *inputPtr
	if inputPath == "" {
		latest, err := system.FindLatestLevel("input/levels")
		if err != nil {
			log.Fatalf("[-] Ошибка: %v. Положите уровень в input/levels/", err)
		}
		inputPath = latest
		fmt.Printf("[*] Выбран файл: %s\n", inputPath)
	}

	finalOutput := *outputPtr
	if finalOutput == "" {
		baseName := filepath.Base(inputPath)
		ext := filepath.Ext(baseName)
		nameOnly := strings.TrimSuffix(baseName, ext)
		cleanName := strings.ReplaceAll(nameOnly, " ", "_")
		timestamp := time.Now().Format("2006-01-02_15-04-05")
		finalOutput = filepath.Join("output", fmt.Sprintf("%s_%s.adofai", cleanName, timestamp))
	}

	width, height := parseSize(*previewSizePtr)

	cfg := &config.Config{
		InputPath:      inputPath,
		OutputPath:     finalOutput,
		ScenarioInput:  *scenarioPtr,
		ScenarioOutput: *exportScenarioPtr,
		PreviewPath:    *previewPtr,
		PreviewWidth:   width,
		PreviewHeight:  height,
		SampleCount:    *samplesPtr,
		Watch:          *watchPtr,
		ShowStats:      *statsPtr,
		BuildVersion:   buildVersion,
	}

	project := engine.NewProject(cfg)
	if err := project.Run(); err != nil {
		log.Fatalf("[-] Ошибка проекта: %v", err)
	}
	fmt.Printf("[+++] Успех! Результат: %s\n", cfg.OutputPath)

	if cfg.Watch {
		if err := watch(project); err != nil {
			log.Fatalf("[-] Ошибка наблюдения: %v", err)
		}
	}
}

func parseSize(s string) (int, int) {
	var w, h int
	if _, err := fmt.Sscanf(strings.ToLower(s), "%dx%d", &w, &h); err != nil || w <= 0 || h <= 0 {
		return 1280, 720
	}
	return w, h
}

// watch пересобирает проект при каждом изменении входного файла. Редакторы
// часто пишут файл несколькими событиями подряд, поэтому пересборка
// откладывается на небольшую паузу.
func watch(project *engine.Project) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Следим за директорией: многие редакторы сохраняют через rename.
	dir := filepath.Dir(project.Config.InputPath)
	if err := watcher.Add(dir); err != nil {
		return err
	}
	fmt.Printf("[*] Наблюдение за %s (Ctrl+C для выхода)\n", project.Config.InputPath)

	target := filepath.Clean(project.Config.InputPath)
	var timer *time.Timer
	rebuild := make(chan struct{}, 1)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(200*time.Millisecond, func() {
				select {
				case rebuild <- struct{}{}:
				default:
				}
			})
		case <-rebuild:
			fmt.Printf("[*] Файл изменился, пересборка...\n")
			if err := project.Run(); err != nil {
				fmt.Printf("[!] Пересборка не удалась: %v\n", err)
			} else {
				fmt.Printf("[+] Готово: %s\n", project.Config.OutputPath)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Printf("[!] Ошибка наблюдателя: %v\n", err)
		}
	}
}
