// Generates a sample form-responses workbook for local runs of the bot
// with XLSX_PATH. Column layout matches the production sheet: owner name
// in E, plate(s) in G, phone in K.
package main

import (
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Ответы на форму (1)"

type row struct {
	Name  string
	Plate string
	Phone string
}

var sampleRows = []row{
	{"Иванов Иван Иванович", "А643ЕЕ77", "+7 (915) 123-45-67"},
	{"Петрова Анна Сергеевна", "В222ВВ22, С333СС33", "8 916 000-00-00"},
	{"Сидоров Пётр", "x004xx116", "9031112233"},
	{"Кузнецов Олег", "О777ОО777", "+7 903 444 55 66"},
	{"Безномерова Мария", "", "9995556677"},
}

func main() {
	out := "testdata.xlsx"
	if len(os.Args) > 1 {
		out = os.Args[1]
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		fmt.Fprintf(os.Stderr, "rename sheet: %v\n", err)
		os.Exit(1)
	}

	writeCell := func(col string, line int, value string) {
		cell := fmt.Sprintf("%s%d", col, line)
		if err := f.SetCellStr(sheetName, cell, value); err != nil {
			fmt.Fprintf(os.Stderr, "set %s: %v\n", cell, err)
			os.Exit(1)
		}
	}

	writeCell("A", 1, "Отметка времени")
	writeCell("E", 1, "ФИО")
	writeCell("G", 1, "Госномер")
	writeCell("K", 1, "Телефон")

	for i, r := range sampleRows {
		line := i + 2
		writeCell("E", line, r.Name)
		writeCell("G", line, r.Plate)
		// K must be reachable so the row is not skipped as short.
		writeCell("K", line, r.Phone)
	}

	if err := f.SaveAs(out); err != nil {
		fmt.Fprintf(os.Stderr, "save %s: %v\n", out, err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s (%d rows)\n", out, len(sampleRows))
}
