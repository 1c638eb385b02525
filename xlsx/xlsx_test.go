package xlsx

import (
	"bytes"
	"testing"

	officegen "github.com/toddbenanzer/office-gen"
	"github.com/toddbenanzer/office-gen/table"
)

func sampleTable(name string) *table.Table {
	cfg := officegen.DefaultConfig()
	return table.New(
		[]string{"Department", "Revenue"},
		[][]interface{}{
			{"Engineering", 1250000},
			{"Sales", 980000},
		},
		cfg,
		table.Options{Name: name},
	)
}

func TestExport(t *testing.T) {
	wb, err := Export(sampleTable("Revenue"))
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	sheets := wb.Sheets()
	if len(sheets) != 1 {
		t.Fatalf("sheet count = %d, want 1", len(sheets))
	}
	if got := sheets[0].Name(); got != "Revenue" {
		t.Errorf("sheet name = %q, want Revenue", got)
	}
	if err := wb.Validate(); err != nil {
		t.Errorf("workbook validation: %v", err)
	}
}

func TestExportDefaultSheetNames(t *testing.T) {
	wb, err := Export(sampleTable(""), sampleTable("Named"))
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	sheets := wb.Sheets()
	if len(sheets) != 2 {
		t.Fatalf("sheet count = %d, want 2", len(sheets))
	}
	if got := sheets[0].Name(); got != "Table 1" {
		t.Errorf("first sheet name = %q, want Table 1", got)
	}
	if got := sheets[1].Name(); got != "Named" {
		t.Errorf("second sheet name = %q, want Named", got)
	}
}

func TestExportEmpty(t *testing.T) {
	if _, err := Export(); err == nil {
		t.Fatal("expected an error for zero tables")
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sampleTable("Out")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("nothing written")
	}
	// XLSX is a zip container.
	if !bytes.HasPrefix(buf.Bytes(), []byte("PK")) {
		t.Errorf("output does not look like a zip")
	}
}
