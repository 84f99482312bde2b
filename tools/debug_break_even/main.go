package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	calc "github.com/rpgo/pension-fund-comparator/internal/calculation"
	"github.com/rpgo/pension-fund-comparator/internal/config"
	"github.com/shopspring/decimal"
)

// Prints one CSV row per pre-retirement fund return in [from, to] showing
// both incomes and the NPS return that would equalise them.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: debug_break_even <parameter-file> [from%] [to%]")
		return
	}
	p := config.NewInputParser()
	pf, err := p.LoadFromFile(os.Args[1])
	if err != nil {
		panic(err)
	}

	from, to := 6, 16
	if len(os.Args) >= 4 {
		if from, err = strconv.Atoi(os.Args[2]); err != nil {
			panic(err)
		}
		if to, err = strconv.Atoi(os.Args[3]); err != nil {
			panic(err)
		}
	}

	engine, err := calc.NewProjectionEngineWithPolicy(pf.Policy())
	if err != nil {
		panic(err)
	}
	engine.BreakEven = true

	fmt.Println("FundReturn,NPSIncome,FundIncome,Winner,Advantage,BreakEvenNPSReturn,Iterations")
	for r := from; r <= to; r++ {
		params := pf.Parameters
		params.FundReturnPreRetirement = decimal.NewFromInt(int64(r))
		res, err := engine.Project(context.Background(), params)
		if err != nil {
			panic(err)
		}
		row := fmt.Sprintf("%d,%s,%s", r, res.Pension.Income.Total.StringFixed(0), res.MutualFund.Income.Total.StringFixed(0))
		if res.Verdict.IsIndeterminate() {
			row += ",indeterminate,"
		} else {
			row += fmt.Sprintf(",%s,%s", res.Verdict.Winner, res.Verdict.Advantage.StringFixed(2))
		}
		if be := res.BreakEven; be != nil {
			row += fmt.Sprintf(",%s,%d", be.PensionReturn.StringFixed(3), be.Iterations)
		} else {
			row += ",,"
		}
		fmt.Println(row)
	}
}
