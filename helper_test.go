package flexfolio

import (
	"strings"
	"testing"
)

// sampleStatement is a two-model statement over one trading week. The numbers
// are small enough to recompute by hand in the derivation tests:
//
//   - "growth" trades AAPL (buys 10 on Feb 6, sells 5 on Feb 8, holds 5 at
//     period end), receives a 500 deposit on Feb 8, and carries a zero-filled
//     placeholder equity summary on Feb 7.
//   - "income" never trades and sees a 200 withdrawal on Feb 8.
const sampleStatement = `<FlexQueryResponse queryName="weekly" type="AF">
 <FlexStatements count="2">
  <FlexStatement accountId="U000000" fromDate="20180205" toDate="20180209" period="LastWeek">
   <ChangeInNAV model="growth" startingValue="10000" endingValue="10800"/>
   <EquitySummaryInBase>
    <EquitySummaryByReportDateInBase reportDate="20180205" cash="1000" cashLong="1000" cashShort="0" total="10000"/>
    <EquitySummaryByReportDateInBase reportDate="20180206" cash="1000" cashLong="1000" cashShort="0" total="10100"/>
    <EquitySummaryByReportDateInBase reportDate="20180207" cash="0" cashLong="0" cashShort="0" total="0"/>
    <EquitySummaryByReportDateInBase reportDate="20180208" cash="1500" cashLong="1500" cashShort="0" total="10700"/>
    <EquitySummaryByReportDateInBase reportDate="20180209" cash="1500" cashLong="1500" cashShort="0" total="10800"/>
   </EquitySummaryInBase>
   <StmtFunds>
    <StatementOfFundsLine date="20180208" activityCode="DEP" amount="500" levelOfDetail="BaseCurrency" currency="USD"/>
    <StatementOfFundsLine date="20180208" activityCode="DEP" amount="500" levelOfDetail="Currency" currency="USD"/>
    <StatementOfFundsLine date="20180206" activityCode="DIV" amount="10" levelOfDetail="BaseCurrency" currency="USD"/>
   </StmtFunds>
   <Trades>
    <Trade symbol="AAPL" conid="265598" tradeDate="20180208" tradeTime="100000" quantity="-5" tradePrice="110" ibCommission="-1" ibExecID="X2" netCash="549"/>
    <Trade symbol="AAPL" conid="265598" tradeDate="20180206" tradeTime="143000" quantity="10" tradePrice="100" ibCommission="-1" ibExecID="X1" netCash="-1001"/>
   </Trades>
   <OpenPositions>
    <OpenPosition symbol="AAPL" conid="265598" reportDate="20180209" position="5" markPrice="112"/>
   </OpenPositions>
   <SecuritiesInfo>
    <SecurityInfo symbol="AAPL" conid="265598" description="APPLE INC"/>
   </SecuritiesInfo>
  </FlexStatement>
  <FlexStatement accountId="U000000" fromDate="20180205" toDate="20180209" period="LastWeek">
   <ChangeInNAV model="income" startingValue="5000" endingValue="4800"/>
   <EquitySummaryInBase>
    <EquitySummaryByReportDateInBase reportDate="20180205" cash="5000" cashLong="5000" cashShort="0" total="5000"/>
    <EquitySummaryByReportDateInBase reportDate="20180206" cash="5000" cashLong="5000" cashShort="0" total="5000"/>
    <EquitySummaryByReportDateInBase reportDate="20180208" cash="4800" cashLong="4800" cashShort="0" total="4800"/>
    <EquitySummaryByReportDateInBase reportDate="20180209" cash="4800" cashLong="4800" cashShort="0" total="4800"/>
   </EquitySummaryInBase>
   <StmtFunds>
    <StatementOfFundsLine date="20180208" activityCode="WITH" amount="-200" levelOfDetail="BaseCurrency" currency="USD"/>
   </StmtFunds>
  </FlexStatement>
 </FlexStatements>
</FlexQueryResponse>`

// singleStatement exercises the single-statement shape, where FlexStatement
// decodes as a lone map instead of a list.
const singleStatement = `<FlexQueryResponse queryName="solo" type="AF">
 <FlexStatements count="1">
  <FlexStatement accountId="U000000" fromDate="20180205" toDate="20180209">
   <ChangeInNAV model="growth" startingValue="10000" endingValue="10800"/>
  </FlexStatement>
 </FlexStatements>
</FlexQueryResponse>`

// mustParse parses an inline statement document, failing the test on error.
func mustParse(t *testing.T, doc string) *Statement {
	t.Helper()
	stmt, err := Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return stmt
}

// day is shorthand for the February 2018 test dates.
func day(d int) Date { return NewDate(2018, 2, d) }

// seriesOf builds a series from alternating day-of-february/value pairs.
func seriesOf(t *testing.T, pairs ...float64) *Series {
	t.Helper()
	if len(pairs)%2 != 0 {
		t.Fatal("seriesOf wants day/value pairs")
	}
	s := &Series{}
	for i := 0; i < len(pairs); i += 2 {
		s.Append(day(int(pairs[i])), pairs[i+1])
	}
	return s
}
