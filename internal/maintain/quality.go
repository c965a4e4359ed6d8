package maintain

import (
	"io/fs"
	"path/filepath"
	"strings"
	"time"
)

// Audio extensions included in the quality report.
var audioExtensions = map[string]bool{
	".mp3":  true,
	".flac": true,
	".wav":  true,
	".m4a":  true,
	".ogg":  true,
}

// Bitrate bands, highest first. Floor zero catches everything below
// 128 kbps.
var bitrateBands = []struct {
	Floor int
	Label string
}{
	{320, "320+ kbps"},
	{256, "256+ kbps"},
	{192, "192+ kbps"},
	{128, "128+ kbps"},
	{0, "<128 kbps"},
}

// AudioProbe is the stream information read from one audio file's tags.
type AudioProbe struct {
	Duration   time.Duration
	Bitrate    int // kbps
	SampleRate int
	Channels   int
}

// Prober inspects an audio file's tag metadata.
type Prober interface {
	Probe(path string) (AudioProbe, error)
}

// QualityReport aggregates the bitrate distribution of every audio file
// under the service root. Files whose tag inspection fails are excluded
// entirely.
type QualityReport struct {
	FilesAnalyzed  int
	TotalDuration  time.Duration
	Distribution   map[string]int // band label -> file count
	AverageBitrate float64        // weighted average of band floors, kbps
}

// QualityReport inspects every audio file and buckets it by bitrate band.
func (s *Service) QualityReport() QualityReport {
	report := QualityReport{Distribution: make(map[string]int)}
	if s.prober == nil {
		return report
	}

	filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !audioExtensions[strings.ToLower(filepath.Ext(path))] {
			return nil
		}

		probe, err := s.prober.Probe(path)
		if err != nil {
			s.logger.Debug("tag inspection failed", "path", path, "error", err)
			return nil
		}

		report.FilesAnalyzed++
		report.TotalDuration += probe.Duration
		report.Distribution[bandLabel(probe.Bitrate)]++
		return nil
	})

	if report.FilesAnalyzed > 0 {
		weighted := 0
		for _, band := range bitrateBands {
			weighted += band.Floor * report.Distribution[band.Label]
		}
		report.AverageBitrate = float64(weighted) / float64(report.FilesAnalyzed)
	}

	return report
}

func bandLabel(bitrate int) string {
	for _, band := range bitrateBands {
		if bitrate >= band.Floor && band.Floor > 0 {
			return band.Label
		}
	}
	return bitrateBands[len(bitrateBands)-1].Label
}
