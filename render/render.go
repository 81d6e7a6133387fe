// Package render is the presentation layer: it consumes finished checkout
// results and writes the fixed-format shipment notice and receipt blocks.
// Display rounding happens here only and never feeds back into stored
// values.
package render

import (
	"fmt"
	"io"

	"retail-checkout/service"
)

// ShipmentWriter prints the shipment notice. It implements service.Shipper,
// so the checkout algorithm invokes it exactly when the manifest is
// non-empty.
type ShipmentWriter struct {
	Out io.Writer
}

// Ship writes one line per physical unit (weight in grams, whole number)
// followed by the aggregate weight in kilograms with one decimal.
func (s *ShipmentWriter) Ship(units []service.ShipmentUnit) {
	fmt.Fprintln(s.Out, "** Shipment notice **")
	var totalKg float64
	for _, u := range units {
		fmt.Fprintf(s.Out, "1x %-10s %.0fg\n", u.Name, u.WeightKg*1000)
		totalKg += u.WeightKg
	}
	fmt.Fprintf(s.Out, "Total package weight %.1fkg\n", totalKg)
}

// WriteReceipt prints the checkout receipt: one line per cart entry, then
// subtotal, shipping, amount and remaining balance, each rounded to whole
// currency units for display.
func WriteReceipt(w io.Writer, ord service.Order) {
	fmt.Fprintln(w, "** Checkout receipt **")
	for _, l := range ord.Lines {
		fmt.Fprintf(w, "%dx %-10s %s\n", l.Quantity, l.Name, l.LineTotal.StringFixed(0))
	}
	fmt.Fprintln(w, "----------------------")
	fmt.Fprintf(w, "Subtotal         %s\n", ord.Subtotal.StringFixed(0))
	fmt.Fprintf(w, "Shipping         %s\n", ord.Shipping.StringFixed(0))
	fmt.Fprintf(w, "Amount           %s\n", ord.Total.StringFixed(0))
	fmt.Fprintf(w, "Remaining Balance %s\n", ord.RemainingBalance.StringFixed(0))
}
