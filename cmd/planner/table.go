package main

import (
	"strconv"

	"itinerary-service/internal/domain"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

var itemHeaders = []string{"Day", "#", "Slot", "Category", "Name", "Minutes", "ID"}
var itemAligns = []columnAlignment{alignRight, alignRight, alignLeft, alignLeft, alignLeft, alignRight, alignLeft}

func itemRows(items []domain.Item) [][]string {
	rows := make([][]string, 0, len(items))
	for i, item := range items {
		rows = append(rows, []string{
			strconv.Itoa(item.Day),
			strconv.Itoa(i),
			item.TimeSlot,
			string(item.Category),
			item.Name,
			strconv.Itoa(item.Duration),
			item.ID,
		})
	}
	return rows
}

func renderItinerary(it domain.Itinerary) string {
	var rows [][]string
	for _, d := range it.Days {
		if len(d.Items) == 0 {
			rows = append(rows, []string{strconv.Itoa(d.Number), "", "", "", "(empty)", "", ""})
			continue
		}
		rows = append(rows, itemRows(d.Items)...)
	}
	return renderTable(itemHeaders, rows, itemAligns)
}
