package report

import (
	"fmt"
	"io"

	"github.com/hyperifyio/gozakupki/internal/extract"
)

// Console lines printed around the record listing.
const (
	SearchingPrefix = "🔎 Поиск по ссылке:"
	NothingFound    = "❌ Ничего не найдено."
	FetchErrorLabel = "Ошибка при загрузке страницы:"
)

// Field labels shared by every renderer.
const (
	LabelTitle    = "Наименование"
	LabelPrice    = "Цена"
	LabelCustomer = "Заказчик"
	LabelLink     = "Ссылка"
)

// WriteText prints records as numbered console blocks, or the nothing-found
// line when records is empty.
func WriteText(w io.Writer, records []extract.Record) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, NothingFound)
		return err
	}
	for i, r := range records {
		if _, err := fmt.Fprintf(w, "\n📌 Результат %d:\n", i+1); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "🔹 %s: %s\n💰 %s: %s\n🏢 %s: %s\n🔗 %s: %s\n",
			LabelTitle, r.Title,
			LabelPrice, r.Price,
			LabelCustomer, r.Customer,
			LabelLink, r.Link,
		); err != nil {
			return err
		}
	}
	return nil
}

// WriteSearching announces the URL about to be fetched.
func WriteSearching(w io.Writer, url string) error {
	_, err := fmt.Fprintln(w, SearchingPrefix, url)
	return err
}

// WriteFetchError reports a non-200 response status.
func WriteFetchError(w io.Writer, status int) error {
	_, err := fmt.Fprintln(w, FetchErrorLabel, status)
	return err
}
