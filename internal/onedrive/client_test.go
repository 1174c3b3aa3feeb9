package onedrive

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TestGraphClientListChildren проверяет разбор ответа Graph:
// папки определяются по folder facet, у файлов человекочитаемый размер.
func TestGraphClientListChildren(t *testing.T) {
	var gotAuth, gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"value":[
			{"id":"item-1","name":"Документы","size":0,"folder":{"childCount":3}},
			{"id":"item-2","name":"Резюме.docx","size":18500}
		]}`)
	}))
	defer ts.Close()

	client := NewGraphClient(ts.URL, 5*time.Second, testLogger())
	files, err := client.ListChildren(context.Background(), "test-access")
	if err != nil {
		t.Fatalf("ListChildren: %v", err)
	}

	if gotAuth != "Bearer test-access" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotPath != "/me/drive/root/children" {
		t.Errorf("запрошен путь %q", gotPath)
	}
	if len(files) != 2 {
		t.Fatalf("получено %d элементов, ожидалось 2", len(files))
	}
	folder, file := files[0], files[1]
	if !folder.IsFolder || folder.Size != "" {
		t.Errorf("папка разобрана как %+v", folder)
	}
	if file.IsFolder || file.Size == "" {
		t.Errorf("файл разобран как %+v", file)
	}
}

// TestGraphClientListChildrenError — ошибка Graph с телом и без него.
func TestGraphClientListChildrenError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error":{"code":"InvalidAuthenticationToken","message":"Access token has expired."}}`)
	}))
	defer ts.Close()

	client := NewGraphClient(ts.URL, 5*time.Second, testLogger())
	_, err := client.ListChildren(context.Background(), "просроченный")
	if err == nil {
		t.Fatal("ожидалась ошибка при 401 от Graph")
	}
	if !strings.Contains(err.Error(), "InvalidAuthenticationToken") {
		t.Errorf("в ошибке нет кода Graph: %v", err)
	}
}

// TestDemoDriveListChildren — демо-набор стабилен и возвращается копиями.
func TestDemoDriveListChildren(t *testing.T) {
	drive := NewDemoDrive()

	first, err := drive.ListChildren(context.Background(), "")
	if err != nil {
		t.Fatalf("ListChildren: %v", err)
	}
	if len(first) != 5 {
		t.Fatalf("в демо-наборе %d элементов, ожидалось 5", len(first))
	}

	// Идентификаторы стабильны между вызовами
	second, _ := drive.ListChildren(context.Background(), "")
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Errorf("id элемента %d изменился между вызовами", i)
		}
	}

	// Мутация результата не затрагивает демо-набор
	first[0].Name = "испорчено"
	third, _ := drive.ListChildren(context.Background(), "")
	if third[0].Name != "Документы" {
		t.Error("ListChildren возвращает ссылки на внутреннее состояние")
	}
}
