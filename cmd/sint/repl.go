/*
 * Sint - Overflow-checked fixed-width signed integers
 *
 * Copyright Flow Foundation
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/c-bata/go-prompt"

	"github.com/onflow/sint"
)

type repl struct {
	policy policy
	events []sint.ErrorKind
}

// RunREPL starts the interactive calculator.
func RunREPL() {
	printReplWelcome()

	r := &repl{
		policy: policyChecked,
	}

	// Record events instead of panicking, so an overflowing
	// expression still prints its wrapped fallback value.
	handler := func(kind sint.ErrorKind) {
		r.events = append(r.events, kind)
	}
	sint.RegisterOverflowHandler(handler)
	sint.RegisterDivideByZeroHandler(handler)

	executor := func(line string) {
		// the unchecked policy can panic, e.g. on division by zero
		defer func() {
			if recovered := recover(); recovered != nil {
				fmt.Println(colorizeError(fmt.Sprint(recovered)))
			}
		}()

		line = strings.TrimSpace(line)
		if line == "" {
			return
		}

		if strings.HasPrefix(line, ".") {
			r.handleCommand(line)
			return
		}

		r.events = r.events[:0]

		result, err := evaluate(line, r.policy)
		if err != nil {
			fmt.Println(colorizeError(err.Error()))
			return
		}

		for _, kind := range r.events {
			fmt.Println(colorizeWarning(kind.String()))
		}

		fmt.Println(formatResult(result))
	}

	suggest := func(d prompt.Document) []prompt.Suggest {
		word := d.GetWordBeforeCursor()
		if !strings.HasPrefix(word, ".") {
			return nil
		}

		suggests := []prompt.Suggest{
			{Text: ".policy", Description: "Select the operation family"},
			{Text: ".help", Description: "Print the help message"},
			{Text: ".exit", Description: "Exit the calculator"},
		}

		return prompt.FilterHasPrefix(suggests, word, false)
	}

	options := []prompt.Option{
		prompt.OptionPrefix("> "),
	}
	prompt.New(executor, suggest, options...).Run()
}

const replHelpMessage = `
Enter integer expressions to evaluate them, e.g.

    (127i8 + 1) * 2
    100i8 << 1
    (-127i8 - 1i8) / -1i8

Literals may carry a width suffix (i8, i16, i32, i64); without one the
literal is 64 bits wide. Mixed widths promote to the larger width.
Overflow and division by zero are reported according to the selected
policy.

Commands are prefixed with a dot. Valid commands are:

.policy <name>   Select checked, wrapped, saturated, or unchecked
.policy          Print the current policy
.help            Print this help message
.exit            Exit the calculator

Press ^C to abort the current expression, ^D to exit`

const replAssistanceMessage = `Type '.help' for assistance.`

func (r *repl) handleCommand(command string) {
	parts := strings.Fields(command)

	switch parts[0] {
	case ".exit":
		os.Exit(0)

	case ".help":
		fmt.Println(replHelpMessage)

	case ".policy":
		if len(parts) < 2 {
			fmt.Printf("policy: %s\n", r.policy)
			return
		}
		p, ok := policyNames[parts[1]]
		if !ok {
			fmt.Println(colorizeError(
				fmt.Sprintf("Unknown policy %q. %s", parts[1], replAssistanceMessage),
			))
			return
		}
		r.policy = p

	default:
		fmt.Println(colorizeError(
			fmt.Sprintf("Unknown command. %s", replAssistanceMessage),
		))
	}
}

func printReplWelcome() {
	fmt.Printf("Welcome to the sint calculator!\n%s\n\n", replAssistanceMessage)
}
