package cpureport

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// CPUColumn is the CSV column the loader extracts. Resource monitors in
// the load-test harness always emit it, whatever else the file carries.
const CPUColumn = "cpu_percent"

// LoadCPUData reads the CPU utilization samples from the named CSV file,
// in row order. Rows where the cpu_percent cell is missing or not a
// number are skipped without notice. A file whose header lacks the
// column yields an empty sequence, not an error.
func LoadCPUData(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loading CPU data: %w", err)
	}
	defer f.Close()
	return readCPUColumn(f)
}

func readCPUColumn(r io.Reader) ([]float64, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	col := -1
	for i, name := range header {
		if name == CPUColumn {
			col = i
			break
		}
	}
	data := []float64{}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			continue
		}
		if col < 0 || col >= len(record) {
			continue
		}
		value, err := strconv.ParseFloat(record[col], 64)
		if err != nil {
			continue
		}
		data = append(data, value)
	}
	return data, nil
}
