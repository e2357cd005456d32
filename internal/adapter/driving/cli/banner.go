package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// displayWelcomeBanner exibe o nome e a versão da ferramenta.
// Vai para stderr para não se misturar com a tabela.
func displayWelcomeBanner(w io.Writer, versionStr string) {
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()
	fmt.Fprintln(w, blue(fmt.Sprintf("count-ovro-files (v%s)", versionStr)))
}
