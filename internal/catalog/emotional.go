package catalog

// emotionalFocuses maps emotional-focus codes to instruction paragraphs.
var emotionalFocuses = map[string]string{
	"dor": "Foco emocional: DOR. Ancore a mensagem no problema presente do leitor — o incômodo diário, a frustração acumulada, aquilo que ele já tentou e não funcionou. Nomeie a dor com as palavras dele antes de oferecer qualquer saída; a pessoa precisa sentir que finalmente foi compreendida. Use a dor para criar identificação, nunca para humilhar.",

	"desejo": "Foco emocional: DESEJO. Ancore a mensagem no futuro que o leitor quer viver: o resultado, o status, a liberdade. Pinte a cena com detalhes sensoriais e específicos — como será o dia dele com o problema resolvido. O desejo puxa mais que a dor empurra neste registro; minimize o problema e maximize a visão do destino.",

	"transformacao": "Foco emocional: TRANSFORMAÇÃO. Ancore a mensagem no contraste entre o antes e o depois. Estruture como travessia: quem o leitor é hoje, quem ele se torna do outro lado e o que a passagem exige. Histórias reais de transformação são a prova mais forte neste registro — mostre pessoas em que ele se reconhece já do outro lado.",

	"prevencao": "Foco emocional: PREVENÇÃO. Ancore a mensagem no risco que ainda não se materializou: o que o leitor perde ou sofre se não agir enquanto há tempo. Torne a ameaça concreta e plausível com exemplos e probabilidades, depois posicione a oferta como proteção sensata. Medo sem caminho de saída paralisa — sempre feche com a ação que neutraliza o risco.",
}
