package config

type Config struct {
	InputPath      string
	OutputPath     string
	ScenarioInput  string
	ScenarioOutput string
	PreviewPath    string
	SampleCount    int
	PreviewWidth   int
	PreviewHeight  int
	Watch          bool
	ShowStats      bool
	BuildVersion   string
}
