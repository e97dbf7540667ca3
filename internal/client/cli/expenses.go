package cli

import (
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"
)

func (a *App) List(ctx context.Context) error {
	if a.view.Fetch(ctx) {
		a.printExpenses()
	}
	return nil
}

func (a *App) Add(ctx context.Context) error {
	text, err := getSimpleText(a.reader, "Enter description", a.out)
	if err != nil {
		return err
	}
	amount, err := getAmount(a.reader, "Enter amount (negative for expense)", a.out)
	if err != nil {
		a.Error(err.Error())
		return err
	}

	if a.view.Add(ctx, text, amount) {
		a.printExpenses()
	}
	return nil
}

// Delete removes the record whose id is given as the first argument, or
// asks for one.
func (a *App) Delete(ctx context.Context, args []string) error {
	var id string
	if len(args) > 0 {
		id = args[0]
	} else {
		var err error
		if id, err = getSimpleText(a.reader, "Enter id", a.out); err != nil {
			return err
		}
	}
	if id == "" {
		printlnFn("Usage: delete <id>")
		return nil
	}

	if a.view.Delete(ctx, id) {
		a.printExpenses()
	}
	return nil
}

func (a *App) Totals(ctx context.Context) error {
	income, expense := a.view.Totals()
	printlnFn(fmt.Sprintf("Income:  %s", money(income)))
	printlnFn(fmt.Sprintf("Expense: %s", money(expense)))
	printlnFn(fmt.Sprintf("Balance: %s", money(income-expense)))
	return nil
}

func (a *App) Products(ctx context.Context) error {
	products, ok := a.view.Products(ctx)
	if !ok {
		return nil
	}
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tPRICE")
	for _, p := range products {
		fmt.Fprintf(tw, "%s\t%d\n", p.Name, p.Price)
	}
	return tw.Flush()
}

func (a *App) printExpenses() {
	list := a.view.Expenses()
	if len(list) == 0 {
		printlnFn("No transactions yet")
	} else {
		tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintln(tw, "ID\tDESCRIPTION\tAMOUNT\t")
		for _, e := range list {
			fmt.Fprintf(tw, "%s\t%s\t%s\t\n", e.ID, e.Text, money(e.Amount))
		}
		_ = tw.Flush()
	}

	income, expense := a.view.Totals()
	printlnFn(fmt.Sprintf("Income: %s  Expense: %s", money(income), money(expense)))
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
