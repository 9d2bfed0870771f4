package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// An instruction is one recorded operation to replay at the candidate
// denominator. Operands are kept as raw fractions; scaling them to the
// candidate denominator is part of the replay and can itself violate.
type instruction struct {
	op         string // frac, mul, div, divint, intdiv
	leftNum    int64
	leftDen    int64
	rightNum   int64
	rightDen   int64 // 1 for the integer operand forms
	source     string
	sourceLine int
}

// parseWorkload reads one instruction per line. Blank lines and lines
// starting with '#' are skipped.
//
//	frac N D
//	mul A/B C/D
//	div A/B C/D
//	divint A/B N
//	intdiv N A/B
func parseWorkload(r io.Reader, name string) ([]instruction, error) {
	var out []instruction
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ins, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", name, lineNo, err)
		}
		ins.source = name
		ins.sourceLine = lineNo
		out = append(out, ins)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return out, nil
}

func parseLine(line string) (instruction, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return instruction{}, fmt.Errorf("want 3 fields, got %d", len(fields))
	}

	ins := instruction{op: fields[0]}
	var err error
	switch ins.op {
	case "frac":
		if ins.leftNum, err = strconv.ParseInt(fields[1], 10, 64); err != nil {
			return instruction{}, err
		}
		if ins.leftDen, err = strconv.ParseInt(fields[2], 10, 64); err != nil {
			return instruction{}, err
		}
		if ins.leftDen == 0 {
			return instruction{}, fmt.Errorf("%q has a zero denominator", fields[1]+"/"+fields[2])
		}
	case "mul", "div":
		if ins.leftNum, ins.leftDen, err = parseFraction(fields[1]); err != nil {
			return instruction{}, err
		}
		if ins.rightNum, ins.rightDen, err = parseFraction(fields[2]); err != nil {
			return instruction{}, err
		}
	case "divint":
		if ins.leftNum, ins.leftDen, err = parseFraction(fields[1]); err != nil {
			return instruction{}, err
		}
		if ins.rightNum, err = strconv.ParseInt(fields[2], 10, 64); err != nil {
			return instruction{}, err
		}
		ins.rightDen = 1
	case "intdiv":
		if ins.leftNum, err = strconv.ParseInt(fields[1], 10, 64); err != nil {
			return instruction{}, err
		}
		ins.leftDen = 1
		if ins.rightNum, ins.rightDen, err = parseFraction(fields[2]); err != nil {
			return instruction{}, err
		}
	default:
		return instruction{}, fmt.Errorf("unknown operation %q", ins.op)
	}
	return ins, nil
}

func parseFraction(s string) (num, den int64, err error) {
	parts := strings.SplitN(s, "/", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%q is not of the form N/D", s)
	}
	if num, err = strconv.ParseInt(parts[0], 10, 64); err != nil {
		return 0, 0, err
	}
	if den, err = strconv.ParseInt(parts[1], 10, 64); err != nil {
		return 0, 0, err
	}
	if den == 0 {
		return 0, 0, fmt.Errorf("%q has a zero denominator", s)
	}
	return num, den, nil
}
