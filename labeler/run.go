package labeler

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"dota-draft-tools/draft"
)

// Describe devuelve lo que se muestra de una habilidad en la tarjeta
type Describe func(name string) draft.AbilityInfo

// Run maneja la sesión desde una terminal. EOF equivale a guardar y salir.
func Run(s *Session, in io.Reader, out io.Writer, describe Describe) error {
	if s.Total() == 0 {
		fmt.Fprintln(out, "No hay habilidades en el cache HS.")
		return nil
	}

	scanner := bufio.NewScanner(in)
	for !s.Done() {
		name, label := s.Current()
		printHeader(out, s.Labeled(), s.Total())
		printCard(out, describe(name), label)
		fmt.Fprint(out, "Etiqueta [c/s/b], saltar [k], deshacer [u], salir [q], ayuda [?]: ")

		key := "q"
		if scanner.Scan() {
			key = scanner.Text()
		}
		res, err := s.Apply(key)
		if err != nil {
			return err
		}
		if res.Message != "" {
			fmt.Fprintln(out, res.Message)
		}
		if res.Quit {
			return nil
		}
	}

	if err := s.Finish(); err != nil {
		return err
	}
	fmt.Fprintf(out, "\nListo. %d/%d habilidades etiquetadas.\n", s.Labeled(), s.Total())
	return nil
}

func printHeader(out io.Writer, done, total int) {
	pct := 100.0
	if total > 0 {
		pct = float64(done) / float64(total) * 100
	}
	bar := strings.Repeat("=", 72)
	fmt.Fprintln(out, bar)
	fmt.Fprintf(out, "Etiquetado de roles: %d/%d (%.1f%%)\n", done, total, pct)
	fmt.Fprintln(out, "Teclas: [c]=carry [s]=support [b]=both [k]=saltar [u]=deshacer [q]=salir [?]=ayuda")
	fmt.Fprintln(out, bar)
}

func printCard(out io.Writer, info draft.AbilityInfo, label string) {
	heroes := "-"
	if len(info.Heroes) > 0 {
		heroes = strings.Join(info.Heroes, ", ")
	}
	img := info.Img
	if img == "" {
		img = "-"
	}
	if info.Kind == draft.KindModel {
		fmt.Fprintf(out, "\nModelo de héroe: %s\n", info.Name)
	} else {
		fmt.Fprintf(out, "\nHabilidad: %s\n", info.Name)
		fmt.Fprintf(out, "  Héroe: %s\n", heroes)
	}
	fmt.Fprintf(out, "  HS Win%%: %s    HS Pick #: %s\n", fmtPct(info.WinPct), fmtNum(info.PickNum))
	fmt.Fprintf(out, "  Icono: %s\n", img)
	if label != "" {
		fmt.Fprintf(out, "  Etiqueta actual: %s (sobrescribir para cambiar)\n", label)
	}
	fmt.Fprintln(out)
}

func fmtPct(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f%%", *v)
}

func fmtNum(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f", *v)
}
