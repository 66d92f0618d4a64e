package extract

import (
	"fmt"
	"strings"
	"testing"
)

func benchPage(blocks int) []byte {
	var b strings.Builder
	b.WriteString("<html><body>")
	for i := 0; i < blocks; i++ {
		fmt.Fprintf(&b, `<div class="search-registry-entry-block">
			<a href="/epz/order/notice/ea20/view/common-info.html?regNumber=%020d">№</a>
			<div class="registry-entry__body-value">Объект закупки %d</div>
			<div class="registry-entry__body-href"><a>Заказчик %d</a></div>
			<div class="price-block__value">%d,00 ₽</div>
		</div>`, i, i, i, i*1000)
	}
	b.WriteString("</body></html>")
	return []byte(b.String())
}

func BenchmarkExtract_50Blocks(b *testing.B) {
	markup := benchPage(50)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if got := Extract(markup, 50); len(got) != 50 {
			b.Fatalf("expected 50 records, got %d", len(got))
		}
	}
}
