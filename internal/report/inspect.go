package report

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/texforge/ctex-extract/pkg/ctex"
)

// InspectInfo describes one container's header without converting it.
type InspectInfo struct {
	Path        string
	Format      ctex.Format
	PayloadSize int64
	Err         error
}

// Inspect reads header information for one container file.
func Inspect(path string) InspectInfo {
	info := InspectInfo{Path: path}

	reader := ctex.NewReader(path)
	if err := reader.Open(); err != nil {
		info.Err = err
		return info
	}
	defer reader.Close()

	format, err := reader.ReadFormat()
	if err != nil {
		info.Err = err
		return info
	}

	info.Format = format
	info.PayloadSize = reader.PayloadSize()
	return info
}

// RenderInspect renders header information for a set of containers.
func RenderInspect(infos []InspectInfo, styled bool) string {
	tw := table.NewWriter()
	if styled {
		tw.SetStyle(table.StyleRounded)
	} else {
		tw.SetStyle(table.StyleLight)
	}

	tw.AppendHeader(table.Row{"File", "Format", "Tag", "Payload"})
	for _, info := range infos {
		if info.Err != nil {
			tw.AppendRow(table.Row{info.Path, "-", "-", info.Err.Error()})
			continue
		}
		tw.AppendRow(table.Row{
			info.Path,
			info.Format.Name(),
			fmt.Sprintf("%d", uint32(info.Format)),
			fmt.Sprintf("%d bytes", info.PayloadSize),
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}
