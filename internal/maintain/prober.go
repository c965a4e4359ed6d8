package maintain

import (
	taglib "github.com/wtolson/go-taglib"
)

// TaglibProber reads audio stream properties through TagLib.
type TaglibProber struct{}

// Probe opens the file's tags and returns its stream properties.
func (TaglibProber) Probe(path string) (AudioProbe, error) {
	file, err := taglib.Read(path)
	if err != nil {
		return AudioProbe{}, err
	}
	defer file.Close()

	return AudioProbe{
		Duration:   file.Length(),
		Bitrate:    file.Bitrate(),
		SampleRate: file.Samplerate(),
		Channels:   file.Channels(),
	}, nil
}
