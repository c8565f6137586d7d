/*
 * Copyright (c) 2020-present unTill Pro, Ltd.
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 */

package logger

import (
	"fmt"
	"runtime"
	"strings"
	"sync/atomic"
	"time"
)

type logPrinter struct {
	logLevel TLogLevel
}

var globalLogPrinter = logPrinter{logLevel: LogLevelInfo}

func isEnabled(logLevel TLogLevel) bool {
	return TLogLevel(atomic.LoadInt32((*int32)(&globalLogPrinter.logLevel))) >= logLevel
}

func printIfLevel(skipStackFrames int, level TLogLevel, args ...interface{}) {
	if isEnabled(level) {
		globalLogPrinter.print(defaultSkipFrames+skipStackFrames, level, args...)
	}
}

func printfIfLevel(level TLogLevel, format string, args ...interface{}) {
	if isEnabled(level) {
		globalLogPrinter.print(defaultSkipFrames, level, fmt.Sprintf(format, args...))
	}
}

func getLevelPrefix(level TLogLevel) string {
	switch level {
	case LogLevelError:
		return errorPrefix
	case LogLevelWarning:
		return warningPrefix
	case LogLevelInfo:
		return infoPrefix
	case LogLevelVerbose:
		return verbosePrefix
	case LogLevelTrace:
		return tracePrefix
	}
	return ""
}

// Returns short function name (package.func) and line of caller
func (p *logPrinter) getFuncName(skipFrames int) (funcName string, line int) {
	pc, _, line, ok := runtime.Caller(skipFrames)
	if !ok {
		return "", 0
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "", line
	}
	funcName = fn.Name()
	if i := strings.LastIndex(funcName, "/"); i >= 0 {
		funcName = funcName[i+1:]
	}
	return funcName, line
}

func (p *logPrinter) getFormattedMsg(msgType string, funcName string, line int, args ...interface{}) string {
	var b strings.Builder
	b.WriteString(time.Now().Format(timeLayout))
	b.WriteString(": ")
	b.WriteString(msgType)
	b.WriteString(": [")
	b.WriteString(funcName)
	b.WriteString(":")
	b.WriteString(fmt.Sprint(line))
	b.WriteString("]:")
	for _, a := range args {
		b.WriteString(" ")
		b.WriteString(fmt.Sprint(a))
	}
	return b.String()
}

func (p *logPrinter) print(skipFrames int, level TLogLevel, args ...interface{}) {
	funcName, line := p.getFuncName(skipFrames)
	PrintLine(level, p.getFormattedMsg(getLevelPrefix(level), funcName, line, args...))
}
