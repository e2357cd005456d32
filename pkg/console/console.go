package console

import (
	"fmt"
	"io"
	"os"

	"github.com/diillson/count-ovro-files/internal/shared/types"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
)

// Console é uma implementação do ConsoleInterface.
// O relatório vai para out; mensagens de log e spinner vão para errOut.
type Console struct {
	out     io.Writer
	errOut  io.Writer
	verbose bool
	spinner bool

	infoPrinter    *pterm.PrefixPrinter
	warningPrinter *pterm.PrefixPrinter
	errorPrinter   *pterm.PrefixPrinter
	successPrinter *pterm.PrefixPrinter
}

// NewConsole cria um novo Console ligado a os.Stdout e os.Stderr.
func NewConsole(verbose bool) *Console {
	c := NewConsoleWithWriters(os.Stdout, os.Stderr, verbose)
	c.spinner = isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	return c
}

// NewConsoleWithWriters cria um Console que escreve nos writers informados.
// The spinner is disabled.
func NewConsoleWithWriters(out, errOut io.Writer, verbose bool) *Console {
	return &Console{
		out:            out,
		errOut:         errOut,
		verbose:        verbose,
		infoPrinter:    pterm.Info.WithWriter(errOut),
		warningPrinter: pterm.Warning.WithWriter(errOut),
		errorPrinter:   pterm.Error.WithWriter(errOut),
		successPrinter: pterm.Success.WithWriter(errOut),
	}
}

// SetVerbose liga ou desliga as mensagens de informação.
func (c *Console) SetVerbose(verbose bool) {
	c.verbose = verbose
}

// Print imprime no console.
func (c *Console) Print(a ...interface{}) {
	fmt.Fprint(c.out, a...)
}

// Printf imprime uma string formatada no console.
func (c *Console) Printf(format string, a ...interface{}) {
	fmt.Fprintf(c.out, format, a...)
}

// Println imprime no console com uma nova linha.
func (c *Console) Println(a ...interface{}) {
	fmt.Fprintln(c.out, a...)
}

// LogInfo registra uma mensagem de informação, apenas no modo verbose.
func (c *Console) LogInfo(format string, a ...interface{}) {
	if !c.verbose {
		return
	}
	c.infoPrinter.Printfln(format, a...)
}

// LogWarning registra uma mensagem de aviso.
func (c *Console) LogWarning(format string, a ...interface{}) {
	c.warningPrinter.Printfln(format, a...)
}

// LogError registra uma mensagem de erro.
func (c *Console) LogError(format string, a ...interface{}) {
	c.errorPrinter.Printfln(format, a...)
}

// LogSuccess registra uma mensagem de sucesso.
func (c *Console) LogSuccess(format string, a ...interface{}) {
	c.successPrinter.Printfln(format, a...)
}

// statusHandle é uma implementação do StatusHandle.
type statusHandle struct {
	spinner *pterm.SpinnerPrinter
}

// Status cria um spinner de status com a mensagem especificada.
// Fora de um terminal o handle retornado não faz nada.
func (c *Console) Status(message string) types.StatusHandle {
	if !c.spinner {
		return &statusHandle{}
	}
	spinner, _ := pterm.DefaultSpinner.
		WithWriter(c.errOut).
		WithRemoveWhenDone(true).
		Start(message)
	return &statusHandle{spinner: spinner}
}

// Update atualiza a mensagem de status.
func (h *statusHandle) Update(message string) {
	if h.spinner != nil {
		h.spinner.UpdateText(message)
	}
}

// Stop pára o spinner de status.
func (h *statusHandle) Stop() {
	if h.spinner != nil {
		_ = h.spinner.Stop()
	}
}
