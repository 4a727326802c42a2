package cli

import (
	"io"
	"sync"

	"github.com/cheggaaa/pb/v3"
	"github.com/m-mizutani/repopeek/pkg/domain/model"
)

const progressTemplate = `{{ string . "title" }} {{ counters . }} {{ bar . }} {{ string . "detail" }}`

// progressBar shows load progress of LoadRepositories on terminal
type progressBar struct {
	mu  sync.Mutex
	bar *pb.ProgressBar
}

func newProgressBar(w io.Writer) *progressBar {
	bar := pb.New64(0).
		SetTemplateString(progressTemplate).
		SetWriter(w)
	return &progressBar{bar: bar}
}

func (x *progressBar) Update(p model.Progress) {
	x.mu.Lock()
	defer x.mu.Unlock()

	if !x.bar.IsStarted() {
		x.bar.Start()
	}
	x.bar.Set("title", p.Title)
	x.bar.Set("detail", p.Detail)
	x.bar.SetTotal(int64(p.Total))
	x.bar.SetCurrent(int64(p.Current))
}

func (x *progressBar) Finish() {
	x.mu.Lock()
	defer x.mu.Unlock()

	if x.bar.IsStarted() {
		x.bar.Finish()
	}
}
