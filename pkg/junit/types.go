// Package junit extracts test case records from zip archives of JUnit-style
// XML reports, the format CI pipelines attach to runs.
package junit

import "encoding/xml"

// suitesDoc is a <testsuites> root. Some producers emit a bare <testsuite>
// root instead; the reader handles both.
type suitesDoc struct {
	XMLName xml.Name   `xml:"testsuites"`
	Suites  []suiteDoc `xml:"testsuite"`
}

type suiteDoc struct {
	Name     string     `xml:"name,attr"`
	Tests    int        `xml:"tests,attr"`
	Failures int        `xml:"failures,attr"`
	Errors   int        `xml:"errors,attr"`
	Time     float64    `xml:"time,attr"`
	Suites   []suiteDoc `xml:"testsuite"` // nested suites
	Cases    []caseDoc  `xml:"testcase"`
}

type caseDoc struct {
	Name      string     `xml:"name,attr"`
	Classname string     `xml:"classname,attr"`
	Time      float64    `xml:"time,attr"`
	Status    string     `xml:"status,attr"`
	Failure   *detailDoc `xml:"failure"`
	Error     *detailDoc `xml:"error"`
	Skipped   *detailDoc `xml:"skipped"`
}

// detailDoc is the body of a <failure>, <error>, or <skipped> element.
type detailDoc struct {
	Message string `xml:"message,attr"`
	Type    string `xml:"type,attr"`
	Content string `xml:",chardata"`
}
