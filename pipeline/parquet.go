package pipeline

import (
	"math"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"

	"github.com/lucasjlepore/trainload"
)

type dailyParquetRow struct {
	Date     string  `parquet:"name=date, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	CTL      float64 `parquet:"name=ctl, type=DOUBLE"`
	ATL      float64 `parquet:"name=atl, type=DOUBLE"`
	TSB      float64 `parquet:"name=tsb, type=DOUBLE"`
	RampRate float64 `parquet:"name=ramp_rate, type=DOUBLE"`
}

func writeDailyParquet(path string, points []trainload.FitnessDataPoint) error {
	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return err
	}
	pw, err := writer.NewParquetWriter(fw, new(dailyParquetRow), 4)
	if err != nil {
		return err
	}
	pw.CompressionType = parquet.CompressionCodec_SNAPPY
	for _, p := range points {
		row := dailyParquetRow{
			Date:     p.Date.Format("2006-01-02"),
			CTL:      p.CTL,
			ATL:      p.ATL,
			TSB:      p.TSB,
			RampRate: valueOrNaN(p.RampRate),
		}
		if err := pw.Write(row); err != nil {
			_ = pw.WriteStop()
			_ = fw.Close()
			return err
		}
	}
	if err := pw.WriteStop(); err != nil {
		_ = fw.Close()
		return err
	}
	return fw.Close()
}

func valueOrNaN(v *float64) float64 {
	if v == nil {
		return math.NaN()
	}
	return *v
}
